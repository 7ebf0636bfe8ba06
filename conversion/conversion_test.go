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

package conversion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	storageclient "github.com/GoogleCloudPlatform/dump-translator/accessors/clients/storage"
	storageaccessor "github.com/GoogleCloudPlatform/dump-translator/accessors/storage"
	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"github.com/GoogleCloudPlatform/dump-translator/internal"
	"github.com/GoogleCloudPlatform/dump-translator/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func TestMain(m *testing.M) {
	res := m.Run()
	os.Exit(res)
}

func localConfig(t *testing.T, input string) Config {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Input = filepath.Join(dir, constants.DefaultInputFile)
	cfg.Output = filepath.Join(dir, constants.DefaultOutputFile)
	assert.Nil(t, os.WriteFile(cfg.Input, []byte(input), 0644))
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "quiz_system_export.sql", cfg.Input)
	assert.Equal(t, "quiz_system_postgres.sql", cfg.Output)
	assert.Equal(t, constants.RuleOrderLegacy, cfg.RuleOrder)
	assert.Equal(t, "", cfg.ReportFile)
	assert.False(t, cfg.NeedsStorageClient())

	cfg.ReportFile = "gs://bucket/report.txt"
	assert.True(t, cfg.NeedsStorageClient())
}

func TestConvertFile(t *testing.T) {
	cfg := localConfig(t, sampleDump)
	var out bytes.Buffer
	stats, err := ConvertFile(context.Background(), &storageaccessor.StorageAccessorImpl{}, nil, cfg, &out)
	assert.Nil(t, err)
	assert.Equal(t, fmt.Sprintf("Converted %s to %s\n", cfg.Input, cfg.Output), out.String())

	b, err := os.ReadFile(cfg.Output)
	assert.Nil(t, err)
	want, _ := ConvertDocument(sampleDump, legacy(t))
	assert.Equal(t, want, string(b))

	assert.True(t, strings.HasPrefix(stats.RunId, "DTR-"))
	assert.Equal(t, int64(len(sampleDump)), stats.BytesRead)
	assert.Equal(t, int64(len(want)), stats.BytesWritten)
	assert.Equal(t, 19, len(stats.Rules))
	assert.Equal(t, constants.RuleOrderLegacy, stats.RuleOrder)
}

func TestConvertFileVerbose(t *testing.T) {
	var verbose bytes.Buffer
	internal.SetVerboseWriter(&verbose)
	internal.VerboseInit(true)
	defer func() {
		internal.VerboseInit(false)
		internal.SetVerboseWriter(os.Stderr)
	}()
	cfg := localConfig(t, sampleDump)
	var out bytes.Buffer

	stats, err := ConvertFile(context.Background(), &storageaccessor.StorageAccessorImpl{}, nil, cfg, &out)

	assert.Nil(t, err)
	assert.Contains(t, verbose.String(), "Run id: "+stats.RunId+"\n")
	assert.Contains(t, verbose.String(), "strip-backticks")
	// Verbose output never reaches the status writer.
	assert.Equal(t, fmt.Sprintf("Converted %s to %s\n", cfg.Input, cfg.Output), out.String())
}

func TestConvertFileOverwritesOutput(t *testing.T) {
	cfg := localConfig(t, "a int")
	assert.Nil(t, os.WriteFile(cfg.Output, []byte("stale content that is much longer than the result"), 0644))
	_, err := ConvertFile(context.Background(), &storageaccessor.StorageAccessorImpl{}, nil, cfg, &bytes.Buffer{})
	assert.Nil(t, err)
	b, err := os.ReadFile(cfg.Output)
	assert.Nil(t, err)
	assert.Equal(t, "a INTEGER", string(b))
}

func TestConvertFileNormalizesLineEndings(t *testing.T) {
	cfg := localConfig(t, "SET NAMES utf8;\r\n  `id` int NOT NULL AUTO_INCREMENT,\r\n")
	_, err := ConvertFile(context.Background(), &storageaccessor.StorageAccessorImpl{}, nil, cfg, &bytes.Buffer{})
	assert.Nil(t, err)
	b, err := os.ReadFile(cfg.Output)
	assert.Nil(t, err)
	assert.Equal(t, "\n  id SERIAL,\n", string(b))
}

func TestConvertFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Input = filepath.Join(dir, "missing.sql")
	cfg.Output = filepath.Join(dir, "out.sql")
	var out bytes.Buffer
	_, err := ConvertFile(context.Background(), &storageaccessor.StorageAccessorImpl{}, nil, cfg, &out)

	var inErr *InputAccessError
	assert.True(t, errors.As(err, &inErr))
	assert.Equal(t, cfg.Input, inErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "", out.String())
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertFileNotText(t *testing.T) {
	cfg := localConfig(t, "CREATE TABLE t (a int);\xff\xfe")
	_, err := ConvertFile(context.Background(), &storageaccessor.StorageAccessorImpl{}, nil, cfg, &bytes.Buffer{})
	var inErr *InputAccessError
	assert.True(t, errors.As(err, &inErr))
	assert.True(t, errors.Is(err, ErrNotText))
	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertFileWriteError(t *testing.T) {
	sam := &storageaccessor.StorageAccessorMock{
		ReadAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
			return "a int", nil
		},
		WriteAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
			assert.Equal(t, "a INTEGER", data)
			return fmt.Errorf("disk full")
		},
	}
	var out bytes.Buffer
	stats, err := ConvertFile(context.Background(), sam, nil, DefaultConfig(), &out)
	var outErr *OutputWriteError
	assert.True(t, errors.As(err, &outErr))
	assert.Equal(t, constants.DefaultOutputFile, outErr.Path)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "", out.String())
	assert.Equal(t, int64(5), stats.BytesRead)
}

func TestConvertFileUnknownRuleOrder(t *testing.T) {
	sam := &storageaccessor.StorageAccessorMock{
		ReadAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
			t.Errorf("input must not be read when the rule order is invalid")
			return "", nil
		},
	}
	cfg := DefaultConfig()
	cfg.RuleOrder = "random"
	_, err := ConvertFile(context.Background(), sam, nil, cfg, &bytes.Buffer{})
	assert.NotNil(t, err)
	var inErr *InputAccessError
	assert.False(t, errors.As(err, &inErr))
}

func TestConvertFileGCS(t *testing.T) {
	written := map[string]string{}
	sam := &storageaccessor.StorageAccessorMock{
		ReadAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
			assert.NotNil(t, sc)
			assert.Equal(t, "gs://dumps/export.sql", filePath)
			return "UNIQUE KEY `uq` (`a`,`b`)", nil
		},
		WriteAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
			written[filePath] = data
			return nil
		},
	}
	cfg := Config{
		Input:      "gs://dumps/export.sql",
		Output:     "gs://dumps/postgres.sql",
		RuleOrder:  constants.RuleOrderFixed,
		ReportFile: "gs://dumps/report.txt",
	}
	var out bytes.Buffer
	_, err := ConvertFile(context.Background(), sam, &storageclient.StorageClientMock{}, cfg, &out)
	assert.Nil(t, err)
	assert.Equal(t, "Converted gs://dumps/export.sql to gs://dumps/postgres.sql\n", out.String())
	assert.Equal(t, "UNIQUE (a,b)", written["gs://dumps/postgres.sql"])
	assert.Contains(t, written["gs://dumps/report.txt"], "Rule order: fixed")
}

func TestConvertFileReportFailureIsNotFatal(t *testing.T) {
	sam := &storageaccessor.StorageAccessorMock{
		ReadAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
			return "a int", nil
		},
		WriteAnyFileMock: func(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
			if filePath == "report.txt" {
				return fmt.Errorf("permission denied")
			}
			return nil
		},
	}
	cfg := DefaultConfig()
	cfg.ReportFile = "report.txt"
	_, err := ConvertFile(context.Background(), sam, nil, cfg, &bytes.Buffer{})
	assert.Nil(t, err)
}
