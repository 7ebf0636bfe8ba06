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

// Package conversion translates a mysqldump script into a PostgreSQL script
// by running an ordered list of textual rewrite rules over the whole file.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	storageclient "github.com/GoogleCloudPlatform/dump-translator/accessors/clients/storage"
	storageaccessor "github.com/GoogleCloudPlatform/dump-translator/accessors/storage"
	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
	"github.com/GoogleCloudPlatform/dump-translator/common/utils"
	"github.com/GoogleCloudPlatform/dump-translator/internal"
	"github.com/GoogleCloudPlatform/dump-translator/logger"
	"go.uber.org/zap"
)

// ErrNotText is wrapped by InputAccessError when the input is not valid UTF-8.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// InputAccessError reports that the input could not be read or decoded.
// Nothing has been written when it is returned.
type InputAccessError struct {
	Path string
	Err  error
}

func (e *InputAccessError) Error() string {
	return fmt.Sprintf("can't read input %s: %v", e.Path, e.Err)
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}

// OutputWriteError reports that the converted document could not be written.
// The output may have been partially written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("can't write output %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// Config holds the parameters of one conversion run.
type Config struct {
	Input      string // Local path or gs://bucket/object of the mysqldump file.
	Output     string // Local path or gs://bucket/object of the PostgreSQL script.
	RuleOrder  string // constants.RuleOrderLegacy or constants.RuleOrderFixed.
	ReportFile string // Optional; no report is written when empty.
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Input:     constants.DefaultInputFile,
		Output:    constants.DefaultOutputFile,
		RuleOrder: constants.RuleOrderLegacy,
	}
}

// NeedsStorageClient reports whether any path in cfg lives in Cloud Storage.
func (cfg Config) NeedsStorageClient() bool {
	return utils.IsGCSPath(cfg.Input) || utils.IsGCSPath(cfg.Output) || utils.IsGCSPath(cfg.ReportFile)
}

// RuleMatch records how many times a rule matched during a run.
type RuleMatch struct {
	Number  int
	Name    string
	Matches int
}

// Stats summarizes a conversion run.
type Stats struct {
	RunId        string
	RuleOrder    string
	Input        string
	Output       string
	BytesRead    int64
	BytesWritten int64
	Rules        []RuleMatch
}

// TotalMatches returns the number of rewrites across all rules.
func (s Stats) TotalMatches() int {
	n := 0
	for _, r := range s.Rules {
		n += r.Matches
	}
	return n
}

// ConvertDocument applies rules to doc in order, feeding each rule the
// output of the previous one.
func ConvertDocument(doc string, rules []Rule) (string, []RuleMatch) {
	return convertDocument(doc, rules, nil)
}

func convertDocument(doc string, rules []Rule, progress *internal.Progress) (string, []RuleMatch) {
	matches := make([]RuleMatch, 0, len(rules))
	for i, r := range rules {
		var n int
		doc, n = r.Apply(doc)
		matches = append(matches, RuleMatch{Number: r.Number, Name: r.Name, Matches: n})
		if progress != nil {
			progress.MaybeReport(int64(i + 1))
		}
	}
	if progress != nil {
		progress.Done()
	}
	return doc, matches
}

// normalizeNewlines turns \r\n and lone \r line endings into \n, so the
// line-oriented rules see the same text whatever platform wrote the dump.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ConvertFile reads cfg.Input, converts it and writes cfg.Output, then prints
// "Converted <input> to <output>" to out. sc may be nil when no path in cfg is
// a Cloud Storage path. If cfg.ReportFile is set, a report is written there;
// failing to write the report does not fail the conversion.
func ConvertFile(ctx context.Context, sa storageaccessor.StorageAccessor, sc storageclient.StorageClient, cfg Config, out io.Writer) (Stats, error) {
	stats := Stats{
		RunId:     utils.GenerateRunId(),
		RuleOrder: cfg.RuleOrder,
		Input:     cfg.Input,
		Output:    cfg.Output,
	}
	log := logger.Log.With(zap.String("runId", stats.RunId))
	internal.VerbosePrintln("Run id:", stats.RunId)
	rules, err := Rules(cfg.RuleOrder)
	if err != nil {
		return stats, err
	}

	content, err := sa.ReadAnyFile(ctx, sc, cfg.Input)
	if err != nil {
		return stats, &InputAccessError{Path: cfg.Input, Err: err}
	}
	if !utf8.ValidString(content) {
		return stats, &InputAccessError{Path: cfg.Input, Err: ErrNotText}
	}
	stats.BytesRead = int64(len(content))
	log.Info(fmt.Sprintf("Read %d bytes from %s", stats.BytesRead, cfg.Input))

	var progress *internal.Progress
	if internal.Verbose() {
		progress = internal.NewProgress(int64(len(rules)), "Applying rules", false, internal.VerboseWriter())
	}
	converted, matches := convertDocument(normalizeNewlines(content), rules, progress)
	stats.Rules = matches
	for _, m := range matches {
		log.Debug("Applied rule", zap.Int("rule", m.Number), zap.String("name", m.Name), zap.Int("matches", m.Matches))
		internal.VerbosePrintf("rule %2d %-32s %d matches\n", m.Number, m.Name, m.Matches)
	}

	if err := sa.WriteAnyFile(ctx, sc, cfg.Output, converted); err != nil {
		return stats, &OutputWriteError{Path: cfg.Output, Err: err}
	}
	stats.BytesWritten = int64(len(converted))
	log.Info(fmt.Sprintf("Wrote %d bytes to %s", stats.BytesWritten, cfg.Output), zap.Int("rewrites", stats.TotalMatches()))
	fmt.Fprintf(out, "Converted %s to %s\n", cfg.Input, cfg.Output)

	if cfg.ReportFile != "" {
		WriteReportFile(ctx, sa, sc, stats, cfg.ReportFile)
	}
	return stats, nil
}
