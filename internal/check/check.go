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

// Package check runs the redundant conditional check on translation units.
package check

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/condguard/internal/scan"
	"fillmore-labs.com/condguard/internal/tracker"
)

// Unit reports the redundant conditional directives of the main file of u.
//
// Directives with a suppression comment are not reported.
func Unit(ctx context.Context, u *scan.Unit, r tracker.Reporter) error {
	defer trace.StartRegion(ctx, "CheckUnit").End()

	t := tracker.New(u.File(), tracker.ReporterFunc(func(f tracker.Finding) {
		if u.NoLint(f.Pos) {
			return
		}

		r.Report(f)
	}))

	return u.Walk(ctx, t)
}
