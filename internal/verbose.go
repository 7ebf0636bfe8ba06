// Copyright 2019 Google LLC
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

package internal

import (
	"fmt"
	"io"
	"os"
)

var chatty = false

// verboseOut is where verbose output goes. Stdout is reserved for the
// conversion status lines.
var verboseOut io.Writer = os.Stderr

// Verbose returns true if verbose mode is enabled.
func Verbose() bool {
	return chatty
}

// VerboseInit determines whether verbose mode is enabled.
// Generally there should be one call to VerboseInit at startup.
func VerboseInit(b bool) {
	chatty = b
}

// VerboseWriter returns the writer verbose output is printed to.
func VerboseWriter() io.Writer {
	return verboseOut
}

// SetVerboseWriter redirects verbose output to w.
func SetVerboseWriter(w io.Writer) {
	verboseOut = w
}

// VerbosePrintf prints to stderr if verbose is enabled.
func VerbosePrintf(format string, a ...interface{}) {
	if Verbose() {
		fmt.Fprintf(verboseOut, format, a...)
	}
}

// VerbosePrintln prints to stderr if verbose is enabled.
func VerbosePrintln(a ...interface{}) {
	if Verbose() {
		fmt.Fprintln(verboseOut, a...)
	}
}
