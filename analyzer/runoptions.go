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
	"log/slog"

	"github.com/spf13/afero"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/condguard/internal/config"
	"fillmore-labs.com/condguard/internal/scan"
)

// runOptions represent configuration runOptions for the condguard analyzer.
type runOptions struct {
	// behavior holds the behavioral options.
	behavior config.BitMask[config.Config]

	// includeDirs are searched for included files, before the directories from #cgo lines.
	includeDirs []string

	// exclude lists glob patterns of files not to check.
	exclude []string

	// logger receives debug messages of the scanner, may be nil.
	logger *slog.Logger

	// fs reads included files.
	fs afero.Fs

	// cache keeps lexed included files over all passes of this analyzer.
	cache *scan.Cache
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	cache, _ := scan.NewCache(scan.DefaultCacheSize) // only fails for invalid sizes

	return &runOptions{
		behavior: config.NewBitMask(config.Default),
		fs:       afero.NewReadOnlyFs(afero.NewOsFs()),
		cache:    cache,
	}
}

// analyzer returns a condguard *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		Run:  r.run,
	}
}
