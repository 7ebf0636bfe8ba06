// Copyright 2020 Google LLC
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

// Package main implements the dump translator, a stand-alone tool that
// rewrites a mysqldump file into a PostgreSQL script.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/GoogleCloudPlatform/dump-translator/cmd"
	"github.com/GoogleCloudPlatform/dump-translator/common/utils"
	"github.com/google/subcommands"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `Sample usage:
  %s
  %s -input=dump.sql -output=postgres.sql
  %s convert -input=gs://bucket/dump.sql -output=postgres.sql -rule-order=fixed
`, os.Args[0], os.Args[0], os.Args[0])
}

func main() {
	ctx := context.Background()
	lf, err := utils.SetupLogFile("")
	if err != nil {
		fmt.Printf("\nCan't set up log file: %v\n", err)
		panic(fmt.Errorf("can't set up log file"))
	}
	defer utils.Close(lf)

	if len(os.Args) > 1 && os.Args[1] != "" && !strings.HasPrefix(os.Args[1], "-") {
		// Subcommand mode.
		subcommands.Register(subcommands.HelpCommand(), "")
		subcommands.Register(subcommands.CommandsCommand(), "")
		subcommands.Register(&cmd.ConvertCmd{}, "")
		subcommands.Register(&cmd.RulesCmd{}, "")
		flag.Parse()
		os.Exit(int(subcommands.Execute(ctx)))
	}

	// Global command line mode: the convert flags are top-level flags and
	// running with no arguments converts the default files.
	convertCmd := &cmd.ConvertCmd{}
	convertCmd.SetFlags(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()
	if status := convertCmd.Execute(ctx, flag.CommandLine); status != subcommands.ExitSuccess {
		os.Exit(int(status))
	}
}
