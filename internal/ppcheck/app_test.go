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

package ppcheck_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/condguard/internal/ppcheck"
	"fillmore-labs.com/condguard/internal/testsource"
)

var tree = map[string]string{
	"src/main.c": `#include "config.h"
#ifdef DEBUG
#ifdef DEBUG
#endif
#endif
`,
	"src/config.h": `#ifndef CONFIG_H
#define CONFIG_H
#ifndef CONFIG_H
#endif
#endif
`,
	"src/asm/entry.S": `#include <arch.h>
#if ARCH == 64
#endif
#endif
`,
	"src/.git/hooks.c": `#ifdef X
#ifdef X
#endif
#endif
`,
	"src/README": `#ifdef X
#ifdef X
`,
	"include/arch.h": `#if ARCH == 64
`,
	"clean.c": `#ifdef A
#endif
`,
}

func TestApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  string
		args    []string
		want    []string
		wantErr error
	}{
		{
			name: "Tree",
			args: []string{"src"},
			want: []string{
				"src/asm/entry.S:2:1: warning: nested redundant #if; consider removing it",
				"include/arch.h:1:1: note: previous #if was here",
				"src/main.c:3:1: warning: nested redundant #ifdef; consider removing it",
				"src/main.c:2:1: note: previous #ifdef was here",
			},
			wantErr: ErrFindings,
		},
		{
			name: "Headers",
			args: []string{"--headers", "--exclude", "**/*.S", "src"},
			want: []string{
				"src/config.h:3:1: warning: nested redundant #ifndef; consider removing it",
				"src/config.h:1:1: note: previous #ifndef was here",
				"src/main.c:3:1: warning: nested redundant #ifdef; consider removing it",
				"src/main.c:2:1: note: previous #ifdef was here",
			},
			wantErr: ErrFindings,
		},
		{
			name:   "ConfigFile",
			config: "headers: true\nexclude:\n  - \"**/main.c\"\n",
			args:   []string{"-I", "include", "src"},
			want: []string{
				"src/asm/entry.S:2:1: warning: nested redundant #if; consider removing it",
				"include/arch.h:1:1: note: previous #if was here",
				"src/config.h:3:1: warning: nested redundant #ifndef; consider removing it",
				"src/config.h:1:1: note: previous #ifndef was here",
			},
			wantErr: ErrFindings,
		},
		{
			name: "NamedFile",
			args: []string{"clean.c"},
		},
		{
			name:    "Missing",
			args:    []string{"missing.c"},
			wantErr: fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files := tree
			if tt.config != "" {
				files = map[string]string{".condguard.yaml": tt.config}
				for name, content := range tree {
					files[name] = content
				}
			}

			var out, errOut strings.Builder

			app := NewApp(testsource.Fs(t, files))
			app.Writer, app.ErrWriter = &out, &errOut

			err := app.Run(append([]string{"ppcheck", "-I", "include"}, tt.args...))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Got error %v, want %v", err, tt.wantErr)
			}

			got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if out.Len() == 0 {
				got = nil
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	app := NewApp(testsource.Fs(t, tree))
	app.Writer, app.ErrWriter = new(strings.Builder), new(strings.Builder)

	if err := app.Run([]string{"ppcheck", "--config", "other.yaml", "src"}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Got error %v, want %v", err, fs.ErrNotExist)
	}
}

func TestVerbose(t *testing.T) {
	t.Parallel()

	var errOut strings.Builder

	app := NewApp(testsource.Fs(t, tree))
	app.Writer, app.ErrWriter = new(strings.Builder), &errOut

	if err := app.Run([]string{"ppcheck", "--verbose", "clean.c"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := errOut.String(); !strings.Contains(got, "Check finished") {
		t.Errorf("Got log %q, want check summary", got)
	}
}
