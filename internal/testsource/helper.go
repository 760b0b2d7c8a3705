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

// Package testsource provides fixtures for tests of the condguard scanner and checker.
//
// It is designed to simplify testing by handling common boilerplate code for
// building in-memory source trees and parsing Go files carrying #cgo preambles.
package testsource

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Fs returns an in-memory file system holding files, keyed by path.
// Parent directories are created implicitly.
func Fs(tb testing.TB, files map[string]string) afero.Fs {
	tb.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			tb.Fatalf("Can't write %s: %v", name, err)
		}
	}

	return fsys
}

// ParseFile parses a Go source file with comments, so that #cgo preambles are retained.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
func ParseFile(tb testing.TB, filename, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Line formats pos as "base:line", independent of the directory of the file.
func Line(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)

	return fmt.Sprintf("%s:%d", filepath.Base(p.Filename), p.Line)
}
