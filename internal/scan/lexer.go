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
	"bytes"
	"strings"
)

// Directive is a preprocessing directive of a source file.
type Directive struct {
	Offset int    // Byte offset of the introducing '#'
	Name   string // Directive name, e.g. "ifdef"
	Arg    string // Remaining text with comments replaced by a space and line continuations joined
	NoLint bool   // The directive carries a suppression comment
}

// Source is a lexed source file.
type Source struct {
	Content    []byte
	Directives []Directive // Sorted by offset
	PragmaOnce bool
}

// Lex splits content into logical lines and extracts the preprocessing directives.
//
// Lexing is purely syntactic: every directive is extracted, regardless of the
// conditional block it appears in.
func Lex(content []byte) *Source {
	src := &Source{Content: content}
	l := lexer{src: content}

	for !l.eof() {
		l.skipBlank()

		if l.peek() != '#' {
			l.skipLine()

			continue
		}

		d := l.directive()
		if d.Name == "" {
			continue // null directive or line marker
		}

		if d.Name == "pragma" && d.Arg == "once" {
			src.PragmaOnce = true
		}

		src.Directives = append(src.Directives, d)
	}

	return src
}

type lexer struct {
	src []byte
	pos int
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}

	return l.src[l.pos+n]
}

// continuation returns the length of a backslash-newline sequence at the current position, or 0.
func (l *lexer) continuation() int {
	if l.peek() != '\\' {
		return 0
	}

	switch l.peekAt(1) {
	case '\n':
		return 2

	case '\r':
		if l.peekAt(2) == '\n' {
			return 3
		}
	}

	return 0
}

// skipBlank skips horizontal white space, continuations and block comments at the start of a line.
func (l *lexer) skipBlank() {
	for !l.eof() {
		switch c := l.peek(); {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v' || c == '\r':
			l.pos++

		case c == '/' && l.peekAt(1) == '*':
			l.blockComment()

		default:
			if n := l.continuation(); n > 0 {
				l.pos += n

				continue
			}

			return
		}
	}
}

// skipLine advances past the end of the current logical line.
func (l *lexer) skipLine() {
	for !l.eof() {
		if n := l.continuation(); n > 0 {
			l.pos += n

			continue
		}

		switch c := l.peek(); {
		case c == '\n':
			l.pos++

			return

		case c == '/' && l.peekAt(1) == '*':
			l.blockComment()

		case c == '/' && l.peekAt(1) == '/':
			l.lineComment()

		case c == '"' || c == '\'':
			l.literal(c)

		default:
			l.pos++
		}
	}
}

// blockComment skips a /* */ comment and returns its text.
func (l *lexer) blockComment() string {
	start := l.pos + 2

	end := bytes.Index(l.src[start:], []byte("*/"))
	if end < 0 {
		l.pos = len(l.src)

		return string(l.src[start:])
	}

	l.pos = start + end + 2

	return string(l.src[start : start+end])
}

// lineComment skips a // comment up to, but not including, the terminating newline and returns its text.
func (l *lexer) lineComment() string {
	var text strings.Builder

	l.pos += 2
	for !l.eof() {
		if n := l.continuation(); n > 0 {
			l.pos += n

			continue
		}

		c := l.peek()
		if c == '\n' {
			break
		}

		text.WriteByte(c) // ignore error
		l.pos++
	}

	return text.String()
}

// literal skips a string or character literal and returns it verbatim.
// An unterminated literal ends at the end of the line.
func (l *lexer) literal(quote byte) string {
	start := l.pos

	l.pos++
	for !l.eof() {
		switch c := l.peek(); c {
		case quote:
			l.pos++

			return string(l.src[start:l.pos])

		case '\\':
			if n := l.continuation(); n > 0 {
				l.pos += n

				continue
			}

			l.pos += 2

		case '\n':
			return string(l.src[start:l.pos])

		default:
			l.pos++
		}
	}

	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}

	return string(l.src[start:l.pos])
}

// directive reads the directive starting at the current '#' up to the end of the logical line.
//
// The argument keeps interior comments, white space and line continuations verbatim.
// Leading and trailing ones are dropped.
func (l *lexer) directive() Directive {
	d := Directive{Offset: l.pos}

	var pieces []piece

	l.pos++
loop:
	for !l.eof() {
		if n := l.continuation(); n > 0 {
			pieces = append(pieces, piece{text: string(l.src[l.pos : l.pos+n]), blank: true})
			l.pos += n

			continue
		}

		switch c := l.peek(); {
		case c == '\n':
			l.pos++

			break loop

		case c == '/' && l.peekAt(1) == '*':
			start := l.pos
			if HasNoLint(l.blockComment()) {
				d.NoLint = true
			}

			pieces = append(pieces, piece{text: string(l.src[start:l.pos]), blank: true})

		case c == '/' && l.peekAt(1) == '/':
			if HasNoLint(l.lineComment()) {
				d.NoLint = true
			}

		case c == '"' || c == '\'':
			pieces = append(pieces, piece{text: l.literal(c)})

		default:
			pieces = append(pieces, piece{text: string(c), blank: isSpace(c)})
			l.pos++
		}
	}

	// Drop blanks around the directive name and the argument
	for len(pieces) > 0 && pieces[0].blank {
		pieces = pieces[1:]
	}

	for len(pieces) > 0 && pieces[len(pieces)-1].blank {
		pieces = pieces[:len(pieces)-1]
	}

	var name strings.Builder

	for len(pieces) > 0 && !pieces[0].blank && identifierLength(name.String()+pieces[0].text) > name.Len() {
		name.WriteString(pieces[0].text) // ignore error
		pieces = pieces[1:]
	}

	for len(pieces) > 0 && pieces[0].blank {
		pieces = pieces[1:]
	}

	var arg strings.Builder
	for _, p := range pieces {
		arg.WriteString(p.text) // ignore error
	}

	d.Name, d.Arg = name.String(), arg.String()

	return d
}

// piece is a lexical fragment of a directive line.
type piece struct {
	text  string
	blank bool // white space, comment or line continuation
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\v' || c == '\r'
}

// identifierLength returns the length of the identifier at the start of s.
func identifierLength(s string) int {
	for i := range len(s) {
		c := s[i]

		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':

		case '0' <= c && c <= '9':
			if i == 0 {
				return 0
			}

		default:
			return i
		}
	}

	return len(s)
}
