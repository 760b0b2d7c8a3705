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

package analyzer

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"runtime/trace"

	"github.com/spf13/afero"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/condguard/internal/cgoflags"
	"fillmore-labs.com/condguard/internal/check"
	"fillmore-labs.com/condguard/internal/config"
	"fillmore-labs.com/condguard/internal/report"
	"fillmore-labs.com/condguard/internal/scan"
)

// run executes the condguard analyzer on the non-Go files of a package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	filter, err := check.NewFilter(r.behavior.Enabled(config.CheckHeaders), r.exclude...)
	if err != nil {
		return nil, fmt.Errorf("condguard: %w", err)
	}

	// Translation units: sources and optionally headers, minus exclusions
	var units []string

	for _, name := range p.OtherFiles {
		if filter.Selected(name) {
			units = append(units, name)
		}
	}

	if len(units) == 0 {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CondGuard")
	defer task.End()

	includeDirs := r.includeDirs
	if r.behavior.Enabled(config.CgoIncludes) {
		files, err := r.cgoSources(p)
		if err != nil {
			return nil, fmt.Errorf("condguard: %w", err)
		}

		// Other files live in the package directory
		dirs, err := cgoflags.IncludeDirs(files, filepath.Dir(units[0]))
		if err != nil {
			return nil, fmt.Errorf("condguard: %w", err)
		}

		includeDirs = append(includeDirs[:len(includeDirs):len(includeDirs)], dirs...)
	}

	s := scan.New(p.Fset, scan.Options{
		Fs:          r.fs,
		IncludeDirs: includeDirs,
		Cache:       r.cache,
		Logger:      r.logger,
	})

	reporter := report.Pass(p)

	for _, name := range units {
		content, err := r.readFile(p, name)
		if err != nil {
			return nil, fmt.Errorf("condguard: %w", err)
		}

		if err := check.Unit(ctx, s.Unit(name, content), reporter); err != nil {
			return nil, fmt.Errorf("condguard: %s: %w", name, err)
		}
	}

	return nil, nil
}

// cgoSources returns the Go files of the package as written, with their import "C" preambles.
//
// Drivers hand cgo packages to the pass after cgo processing, which drops the preambles.
// The original file is found through the //line directives of the processed file.
func (r *runOptions) cgoSources(p *analysis.Pass) ([]*ast.File, error) {
	var files []*ast.File

	seen := make(map[string]bool)

	for _, f := range p.Files {
		tf := p.Fset.File(f.Package)
		if tf == nil {
			continue
		}

		original := p.Fset.Position(f.Package).Filename
		if seen[original] {
			continue
		}

		seen[original] = true

		if original == tf.Name() {
			files = append(files, f)

			continue
		}

		content, err := r.readFile(p, original)
		if err != nil {
			return nil, err
		}

		orig, err := parser.ParseFile(token.NewFileSet(), original, content, parser.ImportsOnly|parser.ParseComments)
		if err != nil {
			return nil, err
		}

		files = append(files, orig)
	}

	return files, nil
}

// readFile reads a file through the pass, which may see unsaved editor content.
// Files the pass does not know, like the originals of cgo processed files, are read from the file system.
func (r *runOptions) readFile(p *analysis.Pass, name string) ([]byte, error) {
	if p.ReadFile != nil {
		if content, err := p.ReadFile(name); err == nil {
			return content, nil
		}
	}

	return afero.ReadFile(r.fs, name)
}
