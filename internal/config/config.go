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

// Package config holds the condguard configuration.
package config

// Config represents behavioral options of the analyzer.
type Config uint8

const (
	// CheckHeaders specifies whether header files are checked as translation units of their own.
	CheckHeaders Config = 1 << iota

	// CgoIncludes specifies whether include directories are taken from #cgo preamble lines.
	CgoIncludes
)

// Default is the configuration used when no option is given.
const Default = CgoIncludes
