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

package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/GoogleCloudPlatform/dump-translator/logger"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConvertSetFlags(t *testing.T) {
	testCases := []struct {
		testName       string
		flagArgs       []string
		expectedValues ConvertCmd
	}{
		{
			testName: "Default Values",
			flagArgs: []string{},
			expectedValues: ConvertCmd{
				input:     "quiz_system_export.sql",
				output:    "quiz_system_postgres.sql",
				ruleOrder: "legacy",
				logLevel:  "WARN",
			},
		},
		{
			testName: "Input and Output",
			flagArgs: []string{"--input=dump.sql", "--output=gs://bucket/pg.sql"},
			expectedValues: ConvertCmd{
				input:     "dump.sql",
				output:    "gs://bucket/pg.sql",
				ruleOrder: "legacy",
				logLevel:  "WARN",
			},
		},
		{
			testName: "All Flags Combined",
			flagArgs: []string{
				"--input=dump.sql",
				"--output=pg.sql",
				"--rule-order=fixed",
				"--report=report.txt",
				"--log-level=DEBUG",
				"--log-file=log.json",
				"-v",
			},
			expectedValues: ConvertCmd{
				input:      "dump.sql",
				output:     "pg.sql",
				ruleOrder:  "fixed",
				reportFile: "report.txt",
				logLevel:   "DEBUG",
				logFile:    "log.json",
				verbose:    true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			fs := flag.NewFlagSet("testSetFlags", flag.ContinueOnError)
			convertCmd := ConvertCmd{}
			convertCmd.SetFlags(fs)
			err := fs.Parse(tc.flagArgs)
			if err != nil {
				t.Fatalf("Failed to parse flags: %v", err)
			}
			assert.Equal(t, tc.expectedValues, convertCmd, tc.testName)
		})
	}
}

func TestConvertConfig(t *testing.T) {
	fs := flag.NewFlagSet("testConfig", flag.ContinueOnError)
	convertCmd := ConvertCmd{}
	convertCmd.SetFlags(fs)
	assert.Nil(t, fs.Parse([]string{"--input=a.sql", "--output=b.sql", "--rule-order=fixed", "--report=r.txt"}))

	cfg := convertCmd.Config()

	assert.Equal(t, "a.sql", cfg.Input)
	assert.Equal(t, "b.sql", cfg.Output)
	assert.Equal(t, "fixed", cfg.RuleOrder)
	assert.Equal(t, "r.txt", cfg.ReportFile)
	assert.False(t, cfg.NeedsStorageClient())
}

func executeConvert(t *testing.T, args []string, stdout *bytes.Buffer) subcommands.ExitStatus {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	convertCmd := &ConvertCmd{out: stdout}
	convertCmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return convertCmd.Execute(context.Background(), fs)
}

func TestConvertExecute(t *testing.T) {
	in, out := writeInput(t, testDump)
	report := filepath.Join(filepath.Dir(out), "report.txt")
	var stdout bytes.Buffer

	status := executeConvert(t, []string{"-input=" + in, "-output=" + out, "-report=" + report, "-log-level=ERROR"}, &stdout)

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Converted "+in+" to "+out+"\nConversion complete!\n", stdout.String())
	got, err := os.ReadFile(out)
	assert.Nil(t, err)
	assert.Equal(t, testConverted, string(got))
	rep, err := os.ReadFile(report)
	assert.Nil(t, err)
	assert.Contains(t, string(rep), "Rule order: legacy")
}

func TestConvertExecute_LogFile(t *testing.T) {
	in, out := writeInput(t, testDump)
	logFile := filepath.Join(filepath.Dir(out), "translator.log")
	var stdout bytes.Buffer

	status := executeConvert(t, []string{"-input=" + in, "-output=" + out, "-log-level=INFO", "-log-file=" + logFile}, &stdout)

	assert.Equal(t, subcommands.ExitSuccess, status)
	b, err := os.ReadFile(logFile)
	assert.Nil(t, err)
	assert.Contains(t, string(b), "Wrote ")
	assert.Contains(t, string(b), `"runId":"DTR-`)
	// The handle was closed when Execute returned.
	assert.Nil(t, logger.Close())
	logger.Log = zap.NewNop()
}

func TestConvertExecute_Failures(t *testing.T) {
	in, out := writeInput(t, testDump)
	missing := filepath.Join(filepath.Dir(in), "missing.sql")
	testCases := []struct {
		testName string
		args     []string
		want     subcommands.ExitStatus
	}{
		{"Missing input", []string{"-input=" + missing, "-output=" + out, "-log-level=ERROR"}, subcommands.ExitFailure},
		{"Unknown rule order", []string{"-input=" + in, "-output=" + out, "-rule-order=newest", "-log-level=ERROR"}, subcommands.ExitUsageError},
		{"Invalid log level", []string{"-input=" + in, "-output=" + out, "-log-level=LOUD"}, subcommands.ExitUsageError},
		{"Verbose set twice", []string{"-input=" + in, "-output=" + out, "-v", "-verbose", "-log-level=ERROR"}, subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			var stdout bytes.Buffer
			status := executeConvert(t, tc.args, &stdout)
			assert.Equal(t, tc.want, status)
			assert.Empty(t, stdout.String())
			_, err := os.Stat(out)
			assert.True(t, os.IsNotExist(err))
		})
	}
}
