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

/*
Package utils contains common helper functions used across multiple other packages.
Utils should not import any dump translator packages other than constants.
*/
package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
)

// IsGCSPath reports whether filePath names a Google Cloud Storage object.
func IsGCSPath(filePath string) bool {
	return strings.HasPrefix(filePath, constants.GCS_FILE_PREFIX)
}

// ParseGCSObjectPath splits a gs://bucket/object path into bucket and object
// names.
func ParseGCSObjectPath(filePath string) (bucket, object string, err error) {
	if len(filePath) == 0 {
		return "", "", fmt.Errorf("found empty GCS path")
	}
	u, err := url.Parse(filePath)
	if err != nil {
		return "", "", fmt.Errorf("parseFilePath: unable to parse file path %s", filePath)
	}
	if u.Scheme != constants.GCS_SCHEME {
		return "", "", fmt.Errorf("not a valid GCS path: %s, should start with 'gs'", filePath)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("no bucket in GCS path: %s", filePath)
	}
	object = strings.TrimPrefix(u.Path, "/")
	if object == "" || strings.HasSuffix(object, "/") {
		return "", "", fmt.Errorf("GCS path %s does not name an object", filePath)
	}
	return u.Host, object, nil
}
