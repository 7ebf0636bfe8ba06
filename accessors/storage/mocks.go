// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package storageaccessor

import (
	"context"

	storageclient "github.com/GoogleCloudPlatform/dump-translator/accessors/clients/storage"
)

type StorageAccessorMock struct {
	WriteDataToGCSMock func(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error
	ReadGcsFileMock    func(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error)
	ReadAnyFileMock    func(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error)
	WriteAnyFileMock   func(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error
}

func (sam *StorageAccessorMock) WriteDataToGCS(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
	return sam.WriteDataToGCSMock(ctx, sc, filePath, data)
}

func (sam *StorageAccessorMock) ReadGcsFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
	return sam.ReadGcsFileMock(ctx, sc, filePath)
}

func (sam *StorageAccessorMock) ReadAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
	return sam.ReadAnyFileMock(ctx, sc, filePath)
}

func (sam *StorageAccessorMock) WriteAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
	return sam.WriteAnyFileMock(ctx, sc, filePath, data)
}
