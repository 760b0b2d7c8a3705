// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"regexp"
	"slices"
	"strings"
)

// condguard is the name of the linter.
const condguard = "condguard"

var (
	clangPattern   = regexp.MustCompile(`\bNOLINT(?:\(([^)]*)\)|\b)`)
	nolintPattern  = regexp.MustCompile(`^\s*nolint:([a-zA-Z0-9,_-]+)`)
	wildcardChecks = []string{condguard, "*", "all"}
)

// HasNoLint checks if the comment text (without delimiters) suppresses condguard diagnostics.
//
// Accepted forms are `NOLINT`, `NOLINT(condguard)` and `nolint:condguard`.
func HasNoLint(comment string) bool {
	if m := clangPattern.FindStringSubmatch(comment); m != nil {
		if !strings.HasPrefix(m[0][len("NOLINT"):], "(") {
			return true // plain NOLINT
		}

		return listsLinter(m[1])
	}

	if m := nolintPattern.FindStringSubmatch(comment); m != nil {
		return listsLinter(m[1])
	}

	return false
}

// listsLinter checks a comma-separated linter list for condguard.
func listsLinter(list string) bool {
	for linter := range strings.SplitSeq(list, ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); slices.Contains(wildcardChecks, l) {
			return true
		}
	}

	return false
}
