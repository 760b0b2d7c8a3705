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

package check_test

import (
	"testing"

	. "fillmore-labs.com/condguard/internal/check"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers bool
		exclude []string
		path    string
		want    bool
	}{
		{"CSource", false, nil, "/src/a.c", true},
		{"Assembly", false, nil, "/src/asm_amd64.s", true},
		{"PreprocessedAssembly", false, nil, "/src/start.S", true},
		{"HeaderDefault", false, nil, "/src/a.h", false},
		{"HeaderEnabled", true, nil, "/src/a.h", true},
		{"GoFile", true, nil, "/src/a.go", false},
		{"Syso", true, nil, "/src/rsrc.syso", false},
		{"Excluded", false, []string{"**/third_party/**"}, "/src/third_party/zlib/deflate.c", false},
		{"NotExcluded", false, []string{"**/third_party/**"}, "/src/zlib/deflate.c", true},
		{"ExcludedBase", true, []string{"**/*_gen.h"}, "/src/x/y_gen.h", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := NewFilter(tt.headers, tt.exclude...)
			if err != nil {
				t.Fatalf("NewFilter failed: %v", err)
			}

			if got := f.Selected(tt.path); got != tt.want {
				t.Errorf("Selected(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilterInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := NewFilter(false, "[unterminated"); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}
