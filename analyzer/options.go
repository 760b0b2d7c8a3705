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

	"fillmore-labs.com/condguard/internal/config"
)

// Option configures specific behavior of a [New] condguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithHeaders is an [Option] to configure whether header files are checked as translation units of their own.
func WithHeaders(headers bool) Option { return headersOption{headers: headers} }

type headersOption struct{ headers bool }

func (o headersOption) apply(r *runOptions) {
	r.behavior.Set(config.CheckHeaders, o.headers)
}

func (o headersOption) LogAttr() slog.Attr {
	return slog.Bool("headers", o.headers)
}

// WithCgo is an [Option] to configure whether include directories are taken from #cgo lines.
func WithCgo(cgo bool) Option { return cgoOption{cgo: cgo} }

type cgoOption struct{ cgo bool }

func (o cgoOption) apply(r *runOptions) {
	r.behavior.Set(config.CgoIncludes, o.cgo)
}

func (o cgoOption) LogAttr() slog.Attr {
	return slog.Bool("cgo", o.cgo)
}

// WithIncludeDirs is an [Option] adding directories searched for included files.
func WithIncludeDirs(dirs ...string) Option { return includeDirsOption{dirs: dirs} }

type includeDirsOption struct{ dirs []string }

func (o includeDirsOption) apply(r *runOptions) {
	r.includeDirs = append(r.includeDirs, o.dirs...)
}

func (o includeDirsOption) LogAttr() slog.Attr {
	return slog.Any("include-dirs", o.dirs)
}

// WithExclude is an [Option] adding glob patterns of files not to check.
// Patterns match slash-separated paths, where `**` matches across directories.
func WithExclude(patterns ...string) Option { return excludeOption{patterns: patterns} }

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *runOptions) {
	r.exclude = append(r.exclude, o.patterns...)
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.patterns)
}

// WithLogger is an [Option] to receive debug messages about skipped directives and includes.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
