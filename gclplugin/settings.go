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

package gclplugin

import condguard "fillmore-labs.com/condguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Headers checks header files as translation units.
	Headers *bool `json:"headers,omitzero"`
	// Cgo reads include directories from #cgo preamble lines.
	Cgo *bool `json:"cgo,omitzero"`
	// IncludeDirs are searched for included files.
	IncludeDirs []string `json:"include-dirs,omitzero"`
	// Exclude lists glob patterns of files not to check.
	Exclude []string `json:"exclude,omitzero"`
}

// Options converts [Settings] into a list of [condguard.Option] for the condguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []condguard.Option {
	var opts []condguard.Option

	opts = appendOption(opts, s.Headers, condguard.WithHeaders)
	opts = appendOption(opts, s.Cgo, condguard.WithCgo)

	if s.IncludeDirs != nil {
		opts = append(opts, condguard.WithIncludeDirs(s.IncludeDirs...))
	}

	if s.Exclude != nil {
		opts = append(opts, condguard.WithExclude(s.Exclude...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [condguard.Option] list.
func appendOption[T any](opts []condguard.Option, value *T, constructor func(T) condguard.Option) []condguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
