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
	"fmt"
	"io"
	"os"
	"strings"

	storageclient "github.com/GoogleCloudPlatform/dump-translator/accessors/clients/storage"
	"github.com/GoogleCloudPlatform/dump-translator/common/utils"
	"github.com/GoogleCloudPlatform/dump-translator/logger"
)

// StorageAccessor reads and writes whole files that live either on the local
// filesystem or in Google Cloud Storage.
type StorageAccessor interface {
	WriteDataToGCS(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error
	ReadGcsFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error)
	ReadAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error)
	WriteAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error
}

type StorageAccessorImpl struct{}

func (sa *StorageAccessorImpl) WriteDataToGCS(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
	bucketName, objectName, err := utils.ParseGCSObjectPath(filePath)
	if err != nil {
		return fmt.Errorf("parseFilePath: unable to parse file path: %w", err)
	}
	obj := sc.Bucket(bucketName).Object(objectName)

	w := obj.NewWriter(ctx)
	logger.Log.Info(fmt.Sprintf("Writing data to %s", filePath))
	n, err := io.WriteString(w, data)
	if err != nil {
		w.Close()
		return fmt.Errorf("failed to write to Cloud Storage %s: %w", filePath, err)
	}
	// For GCS the object only becomes visible once Close succeeds.
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS file %s: %w", filePath, err)
	}
	logger.Log.Info(fmt.Sprintf("Wrote %d bytes to GCS", n))
	return nil
}

func (sa *StorageAccessorImpl) ReadGcsFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
	bucketName, objectName, err := utils.ParseGCSObjectPath(filePath)
	if err != nil {
		return "", fmt.Errorf("unable to parse file path: %w", err)
	}
	obj := sc.Bucket(bucketName).Object(objectName)

	rc, err := obj.NewReader(ctx)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	buf := new(strings.Builder)
	logger.Log.Info(fmt.Sprintf("Reading from %s", filePath))
	n, err := io.Copy(buf, rc)
	if err != nil {
		return "", err
	}
	logger.Log.Info(fmt.Sprintf("Read %d bytes", n))
	return buf.String(), nil
}

func (sa *StorageAccessorImpl) ReadAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
	if utils.IsGCSPath(filePath) {
		if sc == nil {
			return "", fmt.Errorf("no storage client available to read %s", filePath)
		}
		return sa.ReadGcsFile(ctx, sc, filePath)
	}
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteAnyFile creates or truncates filePath and writes data to it. A local
// write that fails partway may leave a truncated file behind.
func (sa *StorageAccessorImpl) WriteAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
	if utils.IsGCSPath(filePath) {
		if sc == nil {
			return fmt.Errorf("no storage client available to write %s", filePath)
		}
		return sa.WriteDataToGCS(ctx, sc, filePath, data)
	}
	return os.WriteFile(filePath, []byte(data), 0644)
}
