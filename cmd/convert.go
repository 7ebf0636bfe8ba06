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
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"github.com/GoogleCloudPlatform/dump-translator/conversion"
	"github.com/GoogleCloudPlatform/dump-translator/internal"
	"github.com/GoogleCloudPlatform/dump-translator/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// ConvertCmd struct with flags.
type ConvertCmd struct {
	input      string
	output     string
	ruleOrder  string
	reportFile string
	logLevel   string
	logFile    string
	verbose    bool
	out        io.Writer // Defaults to os.Stdout.
}

// Name returns the name of operation.
func (cmd *ConvertCmd) Name() string {
	return "convert"
}

// Synopsis returns summary of operation.
func (cmd *ConvertCmd) Synopsis() string {
	return "convert a mysqldump file into a PostgreSQL script"
}

// Usage returns usage info of the command.
func (cmd *ConvertCmd) Usage() string {
	return fmt.Sprintf(`%v convert -input=[mysqldump file] -output=[postgres file] ...

Convert a mysqldump file into a PostgreSQL script by applying a fixed list of
textual rewrite rules. Input and output may be local paths or Cloud Storage
paths of the form gs://bucket/object. The convert flags are:
`, path.Base(os.Args[0]))
}

// SetFlags sets the flags.
func (cmd *ConvertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.input, "input", constants.DefaultInputFile, "Path of the mysqldump file to convert (local path or gs://bucket/object)")
	f.StringVar(&cmd.output, "output", constants.DefaultOutputFile, "Path the PostgreSQL script is written to (local path or gs://bucket/object)")
	f.StringVar(&cmd.ruleOrder, "rule-order", constants.RuleOrderLegacy, fmt.Sprintf("Order in which rewrite rules are applied (accepted values: `%s`, `%s`)", constants.RuleOrderLegacy, constants.RuleOrderFixed))
	f.StringVar(&cmd.reportFile, "report", "", "Optional path of a report listing how often each rule matched")
	f.StringVar(&cmd.logLevel, "log-level", constants.DefaultLogLevel, "Configure the logging level for the command (DEBUG, INFO, WARN, ERROR), defaults to WARN")
	f.StringVar(&cmd.logFile, "log-file", "", "Optional file that JSON logs are appended to")
	f.BoolVar(&cmd.verbose, "v", false, "verbose: print rule progress and match counts to stderr")
	f.BoolVar(&cmd.verbose, "verbose", false, "verbose: print rule progress and match counts to stderr")
}

// Config returns the conversion configuration described by the flags.
func (cmd *ConvertCmd) Config() conversion.Config {
	return conversion.Config{
		Input:      cmd.input,
		Output:     cmd.output,
		RuleOrder:  cmd.ruleOrder,
		ReportFile: cmd.reportFile,
	}
}

func didSetVerboseTwice(f *flag.FlagSet) bool {
	numTimesSet := 0
	f.Visit(func(f *flag.Flag) {
		if f.Name == "v" || f.Name == "verbose" {
			numTimesSet++
		}
	})
	return numTimesSet > 1
}

func (cmd *ConvertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := logger.InitializeLogger(cmd.logLevel, cmd.logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initialising logger, did you specify a valid log-level? [DEBUG, INFO, WARN, ERROR, FATAL]", err)
		return subcommands.ExitUsageError
	}
	defer logger.Close()
	defer logger.Log.Sync()
	if didSetVerboseTwice(f) {
		logger.Log.Error("Cannot set both -v and -verbose flags")
		return subcommands.ExitUsageError
	}
	if _, err := conversion.Rules(cmd.ruleOrder); err != nil {
		logger.Log.Error("Invalid rule order", zap.Error(err))
		return subcommands.ExitUsageError
	}
	internal.VerboseInit(cmd.verbose)
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	if err := CommandLine(ctx, cmd.Config(), out); err != nil {
		logger.Log.Error("Conversion failed", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
