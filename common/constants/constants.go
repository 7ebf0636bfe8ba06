// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package constants contains constants used across multiple other packages.
// All string constants have a lower_case value and thus string matching is
// performend against other lower_case strings.
package constants

const (
	// DefaultInputFile is the mysqldump file read when no input is given.
	DefaultInputFile string = "quiz_system_export.sql"

	// DefaultOutputFile is the PostgreSQL script written when no output is given.
	DefaultOutputFile string = "quiz_system_postgres.sql"

	// RuleOrderLegacy applies the rules in their historical order, where the
	// backtick-aware UNIQUE KEY and CONSTRAINT rules run after backticks are
	// stripped and therefore never match.
	RuleOrderLegacy string = "legacy"

	// RuleOrderFixed moves the backtick-aware rules ahead of backtick stripping.
	RuleOrderFixed string = "fixed"

	// GCS_SCHEME is the URI scheme for Google Cloud Storage objects.
	GCS_SCHEME string = "gs"

	// GCS_FILE_PREFIX prefixes every Google Cloud Storage path.
	GCS_FILE_PREFIX string = "gs://"

	// RUN_ID_PREFIX prefixes the id generated for each conversion run.
	RUN_ID_PREFIX string = "DTR-"

	// DefaultLogLevel keeps the console quiet unless something goes wrong.
	DefaultLogLevel string = "WARN"
)

const (
	// STORAGE_ENDPOINT_ENV overrides the Cloud Storage API endpoint, e.g. to
	// point the translator at a local emulator.
	STORAGE_ENDPOINT_ENV string = "DUMP_TRANSLATOR_STORAGE_ENDPOINT"

	// GCLOUD_AUTH_PLUGIN_ENV set to "true" makes the storage client use the
	// access token in GCLOUD_AUTH_ACCESS_TOKEN_ENV instead of default credentials.
	GCLOUD_AUTH_PLUGIN_ENV       string = "GCLOUD_AUTH_PLUGIN"
	GCLOUD_AUTH_ACCESS_TOKEN_ENV string = "GCLOUD_AUTH_ACCESS_TOKEN"

	USER_AGENT string = "dump-translator"
)
