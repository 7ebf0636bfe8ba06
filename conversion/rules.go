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
	"fmt"
	"regexp"

	"github.com/GoogleCloudPlatform/dump-translator/common/constants"
)

// Rule is a single textual rewrite applied to the whole document.
type Rule struct {
	Number      int    // Position of the rule in the legacy order, starting at 1.
	Name        string // Short kebab-case identifier.
	Description string
	pattern     *regexp.Regexp
	replacement string
}

// Apply rewrites every non-overlapping match of r in doc and returns the new
// document together with the number of matches.
func (r Rule) Apply(doc string) (string, int) {
	n := len(r.pattern.FindAllStringIndex(doc, -1))
	if n == 0 {
		return doc, 0
	}
	return r.pattern.ReplaceAllString(doc, r.replacement), n
}

// Pattern returns the regular expression r matches.
func (r Rule) Pattern() string {
	return r.pattern.String()
}

// Replacement returns the replacement template, in regexp.Expand syntax.
func (r Rule) Replacement() string {
	return r.replacement
}

func newRule(number int, name, description, pattern, replacement string) Rule {
	return Rule{
		Number:      number,
		Name:        name,
		Description: description,
		pattern:     regexp.MustCompile(pattern),
		replacement: replacement,
	}
}

// The patterns are matched against raw text, not parsed SQL, so they also
// fire inside string literals and comments (e.g. a column value "int" is
// rewritten to "INTEGER").
//
// \w, \s and \b are ASCII-only in RE2: a non-ASCII letter counts as a word
// boundary ("éint" becomes "éINTEGER") and does not satisfy \w ("ENGINE=é"
// is kept).
var legacyRules = []Rule{
	newRule(1, "strip-versioned-comments", "remove /*!...*/; version-gated comment blocks", `(?s)/\*!.*?\*/;`, ""),
	newRule(2, "strip-set-statements", "remove SET ...; statements", `SET .*?;`, ""),
	newRule(3, "strip-use-statements", "remove USE `db`; statements", "USE `.*?`;", ""),
	newRule(4, "strip-backticks", "remove backtick identifier quoting", "`", ""),
	newRule(5, "binary-false", `rewrite _binary '\0' to false`, `_binary '\\0'`, "false"),
	newRule(6, "binary-true", `rewrite _binary '' to true`, `_binary ''`, "true"),
	newRule(7, "bit-to-boolean", "rewrite bit(1) to BOOLEAN", `(?i)bit\(1\)`, "BOOLEAN"),
	newRule(8, "auto-increment-to-serial", "rewrite int NOT NULL AUTO_INCREMENT to SERIAL", `(?i)int NOT NULL AUTO_INCREMENT`, "SERIAL"),
	newRule(9, "auto-increment-to-serial-spaced", "rewrite int NOT NULL AUTO_INCREMENT with any spacing to SERIAL", `(?i)int\s+NOT\s+NULL\s+AUTO_INCREMENT`, "SERIAL"),
	newRule(10, "datetime-to-timestamp", "rewrite datetime(6) to TIMESTAMP", `(?i)datetime\(6\)`, "TIMESTAMP"),
	newRule(11, "int-to-integer", "rewrite the word int to INTEGER", `(?i)\bint\b`, "INTEGER"),
	newRule(12, "strip-engine", "remove ENGINE=... table option", `(?i)ENGINE=\w+\s*`, ""),
	newRule(13, "strip-default-charset", "remove DEFAULT CHARSET=... table option", `(?i)DEFAULT CHARSET=\w+`, ""),
	newRule(14, "strip-collate", "remove COLLATE=... table option", `(?i)COLLATE=\w+`, ""),
	newRule(15, "strip-auto-increment-start", "remove AUTO_INCREMENT=n table option", `(?i)AUTO_INCREMENT=\d+`, ""),
	newRule(16, "key-to-index", "rewrite KEY name to INDEX name", `\bKEY\s+([^(]+)`, "INDEX ${1}"),
	newRule(17, "unique-key-to-unique", "rewrite UNIQUE KEY `name` (cols) to UNIQUE (cols)", "UNIQUE KEY `([^`]+)` \\(([^)]+)\\)", "UNIQUE (${2})"),
	newRule(18, "unquote-constraint-name", "rewrite CONSTRAINT `name` to CONSTRAINT name", "CONSTRAINT `([^`]+)`", "CONSTRAINT ${1}"),
	newRule(19, "drop-comma-before-primary-key", "remove the comma in front of PRIMARY KEY", `,(\s*PRIMARY KEY)`, "${1}"),
}

// Rules returns the ordered rule list for order, which is one of
// constants.RuleOrderLegacy or constants.RuleOrderFixed.
//
// In the legacy order rules 17 and 18 look for backtick-quoted names after
// rule 4 has removed every backtick, so they never match. The fixed order
// runs them right before rule 4.
func Rules(order string) ([]Rule, error) {
	switch order {
	case constants.RuleOrderLegacy:
		return append([]Rule(nil), legacyRules...), nil
	case constants.RuleOrderFixed:
		var l []Rule
		for _, r := range legacyRules {
			switch r.Number {
			case 4:
				l = append(l, legacyRules[16], legacyRules[17], r)
			case 17, 18:
				// Already placed ahead of rule 4.
			default:
				l = append(l, r)
			}
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown rule order %q (accepted values: %s, %s)", order, constants.RuleOrderLegacy, constants.RuleOrderFixed)
	}
}
