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
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// MaxIncludeDepth is the maximum nesting of included files.
const MaxIncludeDepth = 200

// ErrIsDirectory is returned when a translation unit names a directory.
var ErrIsDirectory = errors.New("is a directory")

// Callbacks receives the conditional directives of a translation unit.
type Callbacks interface {
	// If is called for an #if directive with its controlling expression.
	If(pos token.Pos, condition string)

	// Ifdef is called for an #ifdef directive with the tested macro name.
	Ifdef(pos token.Pos, name string)

	// Ifndef is called for an #ifndef directive with the tested macro name.
	Ifndef(pos token.Pos, name string)

	// Endif is called for an #endif directive with the position of the directive it closes.
	Endif(pos, ifPos token.Pos)
}

// Options configure a [Scanner].
type Options struct {
	// Fs is used to read included files. Defaults to the OS file system.
	Fs afero.Fs

	// IncludeDirs are searched for included files, in order.
	IncludeDirs []string

	// Cache keeps lexed included files. May be nil.
	Cache *Cache

	// Logger receives debug messages about skipped directives. Defaults to discarding.
	Logger *slog.Logger
}

// Scanner reads translation units and their included files.
// It is not safe for concurrent use.
type Scanner struct {
	fset        *token.FileSet
	fs          afero.Fs
	includeDirs []string
	cache       *Cache
	logger      *slog.Logger

	files map[string]*token.File
}

// New creates a [Scanner] adding files to fset.
func New(fset *token.FileSet, opts Options) *Scanner {
	s := &Scanner{
		fset:        fset,
		fs:          opts.Fs,
		includeDirs: opts.IncludeDirs,
		cache:       opts.Cache,
		logger:      opts.Logger,
		files:       make(map[string]*token.File),
	}

	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}

	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	return s
}

// Unit creates a translation unit from already read content.
func (s *Scanner) Unit(path string, content []byte) *Unit {
	src := Lex(content)

	return &Unit{scanner: s, path: path, file: s.tokenFile(path, src), src: src}
}

// Open reads a translation unit from the file system.
func (s *Scanner) Open(path string) (*Unit, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}

	return s.Unit(path, content), nil
}

// tokenFile returns the [token.File] for path, adding it to the file set on first use.
func (s *Scanner) tokenFile(path string, src *Source) *token.File {
	if f, ok := s.files[path]; ok && f.Size() == len(src.Content) {
		return f
	}

	f := s.fset.AddFile(path, -1, len(src.Content))
	f.SetLinesForContent(src.Content)
	s.files[path] = f

	return f
}

// load reads and lexes an included file.
func (s *Scanner) load(path string) (*Source, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		return nil, err
	}

	if src, ok := s.cache.get(path, fi); ok {
		return src, nil
	}

	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}

	src := Lex(content)
	s.cache.add(path, fi, src)

	return src, nil
}

// resolve finds the file named by the argument of an #include directive in file from.
func (s *Scanner) resolve(from, arg string, next bool) (string, bool) {
	name, quoted, ok := headerName(arg)
	if !ok {
		return "", false
	}

	if filepath.IsAbs(name) {
		return name, s.isFile(name)
	}

	dirs := s.includeDirs
	if quoted {
		dirs = append([]string{filepath.Dir(from)}, dirs...)
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if next && path == from {
			continue
		}

		if s.isFile(path) {
			return path, true
		}
	}

	return "", false
}

func (s *Scanner) isFile(path string) bool {
	fi, err := s.fs.Stat(path)

	return err == nil && !fi.IsDir()
}

// headerName extracts the file name of an "x" or <x> include argument.
// Computed includes are not supported.
func headerName(arg string) (name string, quoted, ok bool) {
	if len(arg) < 2 {
		return "", false, false
	}

	var closing byte

	switch arg[0] {
	case '"':
		closing, quoted = '"', true

	case '<':
		closing = '>'

	default:
		return "", false, false
	}

	for i := 1; i < len(arg); i++ {
		if arg[i] == closing {
			return arg[1:i], quoted, i > 1
		}
	}

	return "", false, false
}

// Unit is a translation unit: a main file and the files it includes.
type Unit struct {
	scanner *Scanner
	path    string
	file    *token.File
	src     *Source
}

// Path returns the path of the main file.
func (u *Unit) Path() string { return u.path }

// File returns the [token.File] of the main file.
func (u *Unit) File() *token.File { return u.file }

// NoLint checks if the main file directive at pos carries a suppression comment.
func (u *Unit) NoLint(pos token.Pos) bool {
	if u.file.Base() > int(pos) || int(pos) > u.file.Base()+u.file.Size() {
		return false
	}

	offset := u.file.Offset(pos)

	i, found := slices.BinarySearchFunc(u.src.Directives, offset,
		func(d Directive, o int) int { return d.Offset - o })

	return found && u.src.Directives[i].NoLint
}

// Walk delivers the conditional directives of the unit, including those of included files.
func (u *Unit) Walk(ctx context.Context, cb Callbacks) error {
	w := walker{
		Scanner: u.scanner,
		ctx:     ctx,
		cb:      cb,
		active:  make(map[string]bool),
		once:    make(map[string]bool),
	}

	return w.walk(u.path, u.file, u.src)
}

// walker holds the state of one [Unit.Walk].
type walker struct {
	*Scanner

	ctx context.Context
	cb  Callbacks

	open   []token.Pos     // open conditionals, shared by all files of the unit
	active map[string]bool // files currently being walked
	once   map[string]bool // files with #pragma once already seen
}

func (w *walker) walk(path string, file *token.File, src *Source) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	w.active[path] = true
	defer delete(w.active, path)

	if src.PragmaOnce {
		w.once[path] = true
	}

	for _, d := range src.Directives {
		pos := file.Pos(d.Offset)

		switch d.Name {
		case "if":
			w.open = append(w.open, pos)
			w.cb.If(pos, d.Arg)

		case "ifdef", "ifndef":
			w.open = append(w.open, pos)

			name := d.Arg[:identifierLength(d.Arg)]
			if name == "" {
				w.debug(file, pos, "Missing macro name", slog.String("directive", d.Name))

				continue
			}

			if d.Name == "ifdef" {
				w.cb.Ifdef(pos, name)
			} else {
				w.cb.Ifndef(pos, name)
			}

		case "endif":
			if len(w.open) == 0 {
				w.debug(file, pos, "Stray #endif")

				continue
			}

			ifPos := w.open[len(w.open)-1]
			w.open = w.open[:len(w.open)-1]
			w.cb.Endif(pos, ifPos)

		case "include", "import", "include_next":
			if err := w.include(path, file, pos, d); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *walker) include(from string, file *token.File, pos token.Pos, d Directive) error {
	path, ok := w.resolve(from, d.Arg, d.Name == "include_next")
	switch {
	case !ok:
		w.debug(file, pos, "Unresolved include", slog.String("include", d.Arg))

		return nil

	case w.active[path]:
		w.debug(file, pos, "Include cycle", slog.String("path", path))

		return nil

	case w.once[path]:
		return nil

	case len(w.active) >= MaxIncludeDepth:
		w.debug(file, pos, "Include nested too deeply", slog.String("path", path))

		return nil
	}

	src, err := w.load(path)
	if err != nil {
		w.debug(file, pos, "Unreadable include", slog.String("path", path), slog.Any("error", err))

		return nil
	}

	return w.walk(path, w.tokenFile(path, src), src)
}

func (w *walker) debug(file *token.File, pos token.Pos, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("pos", file.Position(pos).String()))
	w.logger.LogAttrs(w.ctx, slog.LevelDebug, msg, attrs...)
}
