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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/condguard/analyzer"
	"fillmore-labs.com/condguard/internal/config"
)

func TestConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Config
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.CgoIncludes,
			args:    []string{"-headers"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.CheckHeaders,
			args:    []string{"-headers=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: 0,
			args:    []string{"-headers=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.CheckHeaders
			fv := NewConfigValue(&flags, value)
			fs.Var(fv, "headers", "check header files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("CheckHeaders enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if got, want := flags.Enabled(config.CgoIncludes), tt.initial&config.CgoIncludes != 0; got != want {
				t.Errorf("CgoIncludes enabled = %v, want %v", got, want)
			}
		})
	}
}

func TestConfigValueInvalid(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.Default)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewConfigValue(&flags, config.CheckHeaders), "headers", "check header files")

	if err := fs.Parse([]string{"-headers=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestListValue(t *testing.T) {
	t.Parallel()

	var dirs []string

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fv := NewListValue(&dirs)
	fs.Var(fv, "I", "include directory")

	if err := fs.Parse([]string{"-I", "include", "-I=a, b", "-I", ""}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"include", "a", "b"}
	if diff := cmp.Diff(want, dirs); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, fv.Get()); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	if got, want := fv.String(), "include,a,b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := New(WithHeaders(true))

	const expectedUsage = `
  -headers
    	check header files as translation units (default true)
`

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	if got, want := out.String(), expectedUsage; !strings.Contains(got, want) {
		t.Errorf("PrintDefaults() = %q, want substring %q", got, want)
	}
}
