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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	storageclient "github.com/GoogleCloudPlatform/dump-translator/accessors/clients/storage"
	storageaccessor "github.com/GoogleCloudPlatform/dump-translator/accessors/storage"
	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"github.com/GoogleCloudPlatform/dump-translator/common/utils"
	"github.com/GoogleCloudPlatform/dump-translator/logger"
	"go.uber.org/zap"
)

// WriteReport writes a human readable summary of a conversion run to w.
func WriteReport(stats Stats, banner string, w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	bw.WriteString(banner)
	fmt.Fprintf(bw, "Input:  %s (%d bytes)\n", stats.Input, stats.BytesRead)
	fmt.Fprintf(bw, "Output: %s (%d bytes)\n", stats.Output, stats.BytesWritten)
	fmt.Fprintf(bw, "Rule order: %s\n", stats.RuleOrder)
	fmt.Fprintf(bw, "Total rewrites: %d\n\n", stats.TotalMatches())

	fmt.Fprintf(bw, "%4s  %-32s %s\n", "Rule", "Name", "Matches")
	var unmatched []string
	for _, r := range stats.Rules {
		fmt.Fprintf(bw, "%4d  %-32s %d\n", r.Number, r.Name, r.Matches)
		if r.Matches == 0 {
			unmatched = append(unmatched, r.Name)
		}
	}
	if len(unmatched) > 0 {
		fmt.Fprintf(bw, "\nRules that never matched: %s\n", strings.Join(unmatched, ", "))
	}
	if stats.RuleOrder == constants.RuleOrderLegacy {
		bw.WriteString("\nNote: with the legacy rule order, rules 17 (unique-key-to-unique) and\n" +
			"18 (unquote-constraint-name) run after backticks are stripped and cannot\n" +
			"match. UNIQUE KEY clauses are rewritten to UNIQUE INDEX by rule 16 instead.\n" +
			"Use the fixed rule order to apply them.\n")
	}
}

// WriteReportFile writes the report for stats to name. Failures are logged
// and otherwise ignored.
func WriteReportFile(ctx context.Context, sa storageaccessor.StorageAccessor, sc storageclient.StorageClient, stats Stats, name string) {
	var sb strings.Builder
	WriteReport(stats, utils.GetBanner(time.Now(), stats.RunId), &sb)
	if err := sa.WriteAnyFile(ctx, sc, name, sb.String()); err != nil {
		logger.Log.Warn(fmt.Sprintf("Can't write out report file %s", name), zap.Error(err))
		return
	}
	logger.Log.Info(fmt.Sprintf("Wrote report to file '%s'.", name))
}
