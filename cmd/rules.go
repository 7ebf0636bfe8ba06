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
	"text/tabwriter"

	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"github.com/GoogleCloudPlatform/dump-translator/conversion"
	"github.com/google/subcommands"
)

// RulesCmd struct with flags.
type RulesCmd struct {
	ruleOrder string
	patterns  bool
	out       io.Writer // Defaults to os.Stdout.
}

// Name returns the name of operation.
func (cmd *RulesCmd) Name() string {
	return "rules"
}

// Synopsis returns summary of operation.
func (cmd *RulesCmd) Synopsis() string {
	return "list the rewrite rules in the order they are applied"
}

// Usage returns usage info of the command.
func (cmd *RulesCmd) Usage() string {
	return fmt.Sprintf(`%v rules -rule-order=[legacy|fixed] [-patterns]

List the rewrite rules the convert command applies, in application order.
The rules flags are:
`, path.Base(os.Args[0]))
}

// SetFlags sets the flags.
func (cmd *RulesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.ruleOrder, "rule-order", constants.RuleOrderLegacy, fmt.Sprintf("Order to list the rules in (accepted values: `%s`, `%s`)", constants.RuleOrderLegacy, constants.RuleOrderFixed))
	f.BoolVar(&cmd.patterns, "patterns", false, "Also print the regular expression and replacement of each rule")
}

func (cmd *RulesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rules, err := conversion.Rules(cmd.ruleOrder)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range rules {
		if cmd.patterns {
			fmt.Fprintf(w, "%d\t%s\t%s\t%q\t%q\n", r.Number, r.Name, r.Description, r.Pattern(), r.Replacement())
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.Number, r.Name, r.Description)
		}
	}
	w.Flush()
	return subcommands.ExitSuccess
}
