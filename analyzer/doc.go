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

// Package analyzer implements the condguard static analysis pass.
//
// # Overview
//
// condguard checks the C, C++ and assembly files of a Go package (cgo sources,
// .s and .S files) for conditional directives that repeat the condition of a
// still-open enclosing directive:
//
//	#ifdef GOAMD64_v3
//	#ifdef GOAMD64_v3 // nested redundant #ifdef; consider removing it
//	#endif
//	#endif
//
// A nested #ifdef of a macro tested by an enclosing #ifndef (and vice versa)
// is reported too.
//
// The check is syntactic: conditions are compared by their text, macros are
// never expanded and conditions never evaluated. Included files are followed
// for correct nesting, but only directives in the checked file itself are
// reported.
//
// # Suppression
//
// A `NOLINT`, `NOLINT(condguard)` or `nolint:condguard` comment on the
// directive line suppresses the diagnostic.
//
// # Include Directories
//
// Quoted includes are resolved relative to the including file, then in the
// include directories. Include directories are given with the -I flag and
// taken from `#cgo CFLAGS`, `CPPFLAGS` and `CXXFLAGS` lines, unless -cgo=false
// is set.
package analyzer
