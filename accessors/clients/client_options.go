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

// Package clients holds the options shared by the Google Cloud clients the
// translator creates.
package clients

import (
	"os"

	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// FetchStorageClientOptions returns the options the Cloud Storage client is
// created with, based on the environment.
func FetchStorageClientOptions() []option.ClientOption {
	clientOptions := []option.ClientOption{option.WithUserAgent(constants.USER_AGENT)}
	if endpoint := os.Getenv(constants.STORAGE_ENDPOINT_ENV); endpoint != "" {
		clientOptions = append(clientOptions, option.WithEndpoint(endpoint))
	}
	if authOption := fetchAuthClientOptions(); authOption != nil {
		clientOptions = append(clientOptions, authOption)
	}
	return clientOptions
}

func fetchAuthClientOptions() option.ClientOption {
	if os.Getenv(constants.GCLOUD_AUTH_PLUGIN_ENV) != "true" {
		return nil
	}
	return option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: os.Getenv(constants.GCLOUD_AUTH_ACCESS_TOKEN_ENV),
	}))
}
