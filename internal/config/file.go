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

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".condguard.yaml"

// File is the content of a configuration file.
//
//	include-dirs:
//	  - include
//	headers: true
//	exclude:
//	  - "**/third_party/**"
type File struct {
	// IncludeDirs are searched for included files.
	IncludeDirs []string `yaml:"include-dirs"`

	// Headers enables checking header files as translation units.
	Headers *bool `yaml:"headers"`

	// Exclude lists glob patterns of files not to check.
	Exclude []string `yaml:"exclude"`
}

// Load reads a configuration file. With optional set, a missing file results in an empty configuration.
func Load(fsys afero.Fs, path string, optional bool) (File, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}

		return File{}, fmt.Errorf("can't read configuration: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses a configuration, rejecting unknown keys.
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c File
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}
