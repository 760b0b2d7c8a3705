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

// Package report formats redundant conditional findings.
package report

import (
	"fmt"
	"go/token"
	"io"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/condguard/internal/directive"
	"fillmore-labs.com/condguard/internal/tracker"
)

// Warning returns the message for a redundant directive of the given kind.
func Warning(kind directive.Kind) string {
	return fmt.Sprintf("nested redundant %s; consider removing it", kind)
}

// Note returns the message for the enclosing directive of the given kind.
func Note(kind directive.Kind) string {
	return fmt.Sprintf("previous %s was here", kind)
}

// Diagnostic converts a finding into an [analysis.Diagnostic], with the enclosing directive as related information.
func Diagnostic(f tracker.Finding) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      f.Pos,
		Category: "redundant",
		Message:  Warning(f.Kind),
		Related: []analysis.RelatedInformation{{
			Pos:     f.Previous,
			Message: Note(f.PreviousKind),
		}},
	}
}

// Pass returns a [tracker.Reporter] reporting findings as diagnostics of p.
func Pass(p *analysis.Pass) tracker.Reporter {
	return tracker.ReporterFunc(func(f tracker.Finding) { p.Report(Diagnostic(f)) })
}

// Text writes findings in compiler style, one warning line followed by its note.
type Text struct {
	Fset  *token.FileSet
	Out   io.Writer
	Count int
}

// Report implements [tracker.Reporter].
func (t *Text) Report(f tracker.Finding) {
	t.Count++

	_, _ = fmt.Fprintf(t.Out, "%s: warning: %s\n", t.Fset.Position(f.Pos), Warning(f.Kind))
	_, _ = fmt.Fprintf(t.Out, "%s: note: %s\n", t.Fset.Position(f.Previous), Note(f.PreviousKind))
}
