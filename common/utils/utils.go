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

// Package utils contains common helper functions used across multiple other packages.
// Utils should not import any dump translator packages other than constants.
package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"github.com/google/uuid"
)

// SetupLogFile configures the file used for logs written through the
// standard library log package.
// By default we just drop logs on the floor. Some of the libraries we use
// (e.g. the Cloud Storage client) log through it, and we don't want those
// messages mixed into stdout, which carries only the conversion status.
func SetupLogFile(logfile string) (*os.File, error) {
	if logfile == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.Create(logfile)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

// Close closes file.
func Close(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// GenerateRunId returns a fresh identifier for one conversion run.
func GenerateRunId() string {
	return constants.RUN_ID_PREFIX + uuid.New().String()
}

// GetBanner returns the header line written at the top of a report.
func GetBanner(now time.Time, runId string) string {
	return fmt.Sprintf("Generated at %s for run %s\n\n", now.Format("2006-01-02 15:04:05"), runId)
}
