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

// Package directive defines the conditional directive kinds tracked by condguard.
package directive

// Kind is a conditional directive that opens a nesting scope.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// If is an #if directive, keyed by its controlling expression.
	If Kind = iota // #if

	// Ifdef is an #ifdef directive, keyed by the tested macro name.
	Ifdef // #ifdef

	// Ifndef is an #ifndef directive, keyed by the tested macro name.
	Ifndef // #ifndef
)

// Kinds lists all directive kinds in declaration order.
var Kinds = [...]Kind{If, Ifdef, Ifndef}

// Complement returns the kind testing the opposite polarity of the same macro.
// The second result is false for [If], which has no complement.
func (k Kind) Complement() (Kind, bool) {
	switch k {
	case Ifdef:
		return Ifndef, true

	case Ifndef:
		return Ifdef, true

	default:
		return k, false
	}
}
