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

// Package cgoflags extracts include directories from #cgo preamble lines.
package cgoflags

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// IncludeDirs returns the include directories of all #cgo CFLAGS, CPPFLAGS and CXXFLAGS lines in the
// preambles of files, in order of appearance and without duplicates.
//
// Build constraints of #cgo lines are ignored. ${SRCDIR} expands to srcdir.
func IncludeDirs(files []*ast.File, srcdir string) ([]string, error) {
	var dirs []string

	seen := make(map[string]bool)

	for _, f := range files {
		for _, preamble := range Preambles(f) {
			for line := range strings.Lines(preamble) {
				ds, err := ParseLine(line, srcdir)
				if err != nil {
					return nil, err
				}

				for _, d := range ds {
					if !seen[d] {
						seen[d] = true
						dirs = append(dirs, d)
					}
				}
			}
		}
	}

	return dirs, nil
}

// Preambles returns the comment text preceding each import "C" of f.
func Preambles(f *ast.File) []string {
	var preambles []string

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range gen.Specs {
			imp, ok := spec.(*ast.ImportSpec)
			if !ok {
				continue
			}

			if path, err := strconv.Unquote(imp.Path.Value); err != nil || path != "C" {
				continue
			}

			doc := imp.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			if doc != nil {
				preambles = append(preambles, doc.Text())
			}
		}
	}

	return preambles
}

// ParseLine returns the include directories of a single #cgo line. Other lines yield no directories.
func ParseLine(line, srcdir string) ([]string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#cgo")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return nil, nil
	}

	head, args, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, nil
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return nil, nil
	}

	switch fields[len(fields)-1] {
	case "CFLAGS", "CPPFLAGS", "CXXFLAGS":

	default:
		return nil, nil
	}

	words, err := shellquote.Split(strings.ReplaceAll(args, "${SRCDIR}", srcdir))
	if err != nil {
		return nil, fmt.Errorf("invalid #cgo line %q: %w", line, err)
	}

	var dirs []string

	for i := 0; i < len(words); i++ {
		for _, opt := range [...]string{"-I", "-iquote", "-isystem", "-idirafter"} {
			dir, ok := strings.CutPrefix(words[i], opt)
			if !ok {
				continue
			}

			if dir == "" {
				if i+1 >= len(words) {
					break
				}

				i++
				dir = words[i]
			}

			if !filepath.IsAbs(dir) {
				dir = filepath.Join(srcdir, dir)
			}

			dirs = append(dirs, filepath.Clean(dir))

			break
		}
	}

	return dirs, nil
}
