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

package config_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	. "fillmore-labs.com/condguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(Default)

	if b.Enabled(CheckHeaders) || !b.Enabled(CgoIncludes) {
		t.Fatalf("Unexpected default %v", b)
	}

	b.Set(CheckHeaders, true)
	b.Set(CgoIncludes, false)

	if !b.Enabled(CheckHeaders) || b.Enabled(CgoIncludes) {
		t.Errorf("Unexpected flags after Set %v", b)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	yes := true

	tests := []struct {
		name    string
		content string
		want    File
		wantErr bool
	}{
		{
			name:    "Full",
			content: "include-dirs: [include, /usr/local/include]\nheaders: true\nexclude:\n  - \"**/third_party/**\"\n",
			want: File{
				IncludeDirs: []string{"include", "/usr/local/include"},
				Headers:     &yes,
				Exclude:     []string{"**/third_party/**"},
			},
		},
		{
			name:    "Empty",
			content: "",
		},
		{
			name:    "UnknownKey",
			content: "includes: [x]\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(strings.NewReader(tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}

				return
			}

			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	if _, err := Load(fs, DefaultFile, true); err != nil {
		t.Errorf("Optional missing file: %v", err)
	}

	if _, err := Load(fs, DefaultFile, false); err == nil {
		t.Error("Expected error for missing file")
	}

	if err := afero.WriteFile(fs, DefaultFile, []byte("headers: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(fs, DefaultFile, false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Headers == nil || *c.Headers {
		t.Errorf("Got headers %v, want false", c.Headers)
	}
}
