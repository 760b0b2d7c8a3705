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

package check

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// FileKind classifies files by extension.
type FileKind uint8

const (
	// Other files are not checked.
	Other FileKind = iota

	// Source files are translation units.
	Source

	// Header files are translation units only when requested.
	Header
)

// Classify returns the [FileKind] of path.
func Classify(path string) FileKind {
	switch filepath.Ext(path) {
	case ".c", ".cc", ".cpp", ".cxx", ".c++", ".C", ".m", ".mm", ".s", ".S", ".sx":
		return Source

	case ".h", ".hh", ".hpp", ".hxx", ".h++", ".H", ".inc":
		return Header

	default:
		return Other
	}
}

// Filter selects the files to check.
type Filter struct {
	headers bool
	exclude []glob.Glob
}

// NewFilter creates a [Filter]. Exclusion patterns use forward slashes, where `**` matches across directories.
func NewFilter(headers bool, exclude ...string) (Filter, error) {
	f := Filter{headers: headers, exclude: make([]glob.Glob, 0, len(exclude))}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return Filter{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		f.exclude = append(f.exclude, g)
	}

	return f, nil
}

// Selected checks whether path should be checked as a translation unit.
func (f Filter) Selected(path string) bool {
	switch Classify(path) {
	case Source:

	case Header:
		if !f.headers {
			return false
		}

	default:
		return false
	}

	slashed := filepath.ToSlash(path)
	for _, g := range f.exclude {
		if g.Match(slashed) {
			return false
		}
	}

	return true
}
