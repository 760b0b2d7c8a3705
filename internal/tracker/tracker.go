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

// Package tracker detects conditional directives that re-test the condition of
// a still-open enclosing directive.
package tracker

import (
	"go/token"

	"fillmore-labs.com/condguard/internal/directive"
)

// Entry is a currently open conditional directive.
type Entry struct {
	// Pos is the position of the opening directive, used as diagnostic anchor
	// and to match the corresponding #endif.
	Pos token.Pos

	// Condition is the controlling expression of an #if or the macro name of an #ifdef or #ifndef.
	Condition string
}

// Finding is a redundant directive together with the enclosing directive it repeats.
type Finding struct {
	Pos          token.Pos      // The redundant directive
	Kind         directive.Kind // Kind of the redundant directive
	Previous     token.Pos      // The enclosing directive testing the same condition
	PreviousKind directive.Kind // Kind of the enclosing directive
}

// Reporter receives findings in the order the directives are processed.
type Reporter interface {
	Report(f Finding)
}

// ReporterFunc is an adapter to allow the use of ordinary functions as a [Reporter].
type ReporterFunc func(f Finding)

// Report calls r(f).
func (r ReporterFunc) Report(f Finding) { r(f) }

// Tracker maintains the nesting stacks of one translation unit.
//
// Directives of all files are tracked, but only directives in the main file are reported.
// A Tracker is not safe for concurrent use.
type Tracker struct {
	main     *token.File
	reporter Reporter

	stacks [len(directive.Kinds)][]Entry
}

// New creates a [Tracker] for the translation unit rooted at main.
func New(main *token.File, reporter Reporter) *Tracker {
	return &Tracker{main: main, reporter: reporter}
}

// If records an #if directive with the given controlling expression.
func (t *Tracker) If(pos token.Pos, condition string) {
	t.check(pos, condition, directive.If, directive.If)
	t.push(directive.If, pos, condition)
}

// Ifdef records an #ifdef directive testing the named macro.
func (t *Tracker) Ifdef(pos token.Pos, name string) {
	t.macro(pos, name, directive.Ifdef)
}

// Ifndef records an #ifndef directive testing the named macro.
func (t *Tracker) Ifndef(pos token.Pos, name string) {
	t.macro(pos, name, directive.Ifndef)
}

// Endif closes the directive opened at ifPos.
//
// Each stack is popped when its innermost entry was opened at ifPos. When no
// stack matches, Endif does nothing.
func (t *Tracker) Endif(_, ifPos token.Pos) {
	for k := range t.stacks {
		if s := t.stacks[k]; len(s) > 0 && s[len(s)-1].Pos == ifPos {
			t.stacks[k] = s[:len(s)-1]
		}
	}
}

// Open returns the open directives of the given kind, outermost first.
func (t *Tracker) Open(kind directive.Kind) []Entry {
	return t.stacks[kind]
}

func (t *Tracker) macro(pos token.Pos, name string, kind directive.Kind) {
	t.check(pos, name, kind, kind)

	if complement, ok := kind.Complement(); ok {
		// Opposite polarity is reported too, but the stack belongs to the other kind.
		t.check(pos, name, complement, kind)
	}

	t.push(kind, pos, name)
}

// check reports every entry of the stack for kind that tests condition.
func (t *Tracker) check(pos token.Pos, condition string, kind, current directive.Kind) {
	if !t.inMain(pos) {
		return
	}

	for _, e := range t.stacks[kind] {
		if e.Condition != condition {
			continue
		}

		t.reporter.Report(Finding{Pos: pos, Kind: current, Previous: e.Pos, PreviousKind: kind})
	}
}

// push stores a directive regardless of the file it is in, so included files keep the nesting intact.
func (t *Tracker) push(kind directive.Kind, pos token.Pos, condition string) {
	t.stacks[kind] = append(t.stacks[kind], Entry{Pos: pos, Condition: condition})
}

// inMain reports whether pos lies in the main file.
func (t *Tracker) inMain(pos token.Pos) bool {
	if t.main == nil || !pos.IsValid() {
		return false
	}

	base := t.main.Base()

	return base <= int(pos) && int(pos) <= base+t.main.Size()
}
