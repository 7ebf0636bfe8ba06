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

// Package cmd implements command line utility for the dump translator.
package cmd

import (
	"context"
	"fmt"
	"io"

	storageclient "github.com/GoogleCloudPlatform/dump-translator/accessors/clients/storage"
	storageaccessor "github.com/GoogleCloudPlatform/dump-translator/accessors/storage"
	"github.com/GoogleCloudPlatform/dump-translator/conversion"
)

// This function is declared as a global variable to make it testable. The unit
// tests update this function, acting like a double.
var newStorageClient = func(ctx context.Context) (storageclient.StorageClient, error) {
	return storageclient.NewStorageClientImpl(ctx)
}

// CommandLine provides the core processing for the dump translator when run as
// a command-line tool. It performs the following steps:
// 1. Create a Cloud Storage client (only if a gs:// path is used)
// 2. Read the mysqldump file, apply the rewrite rules and write the result
// 3. Write the report (if requested)
// 4. Print the completion message
func CommandLine(ctx context.Context, cfg conversion.Config, out io.Writer) error {
	var sc storageclient.StorageClient
	if cfg.NeedsStorageClient() {
		c, err := newStorageClient(ctx)
		if err != nil {
			return fmt.Errorf("can't create storage client: %w", err)
		}
		sc = c
	}
	if _, err := conversion.ConvertFile(ctx, &storageaccessor.StorageAccessorImpl{}, sc, cfg, out); err != nil {
		return err
	}
	fmt.Fprintln(out, "Conversion complete!")
	return nil
}
