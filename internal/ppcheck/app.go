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

package ppcheck

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime/trace"
	"slices"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"fillmore-labs.com/condguard/internal/check"
	"fillmore-labs.com/condguard/internal/config"
	"fillmore-labs.com/condguard/internal/report"
	"fillmore-labs.com/condguard/internal/scan"
)

// ErrFindings is returned when redundant directives were reported.
var ErrFindings = errors.New("redundant conditional directives found")

// NewApp creates the ppcheck application reading from fsys.
func NewApp(fsys afero.Fs) *cli.App {
	app := cli.NewApp()
	app.Name = "ppcheck"
	app.Usage = "Report redundant nested conditional directives"
	app.Description = `ppcheck reports #if, #ifdef and #ifndef directives that re-test the condition of an enclosing directive.
Directories are searched for C, C++, Objective-C and assembly sources.`
	app.ArgsUsage = "<file or directory>..."
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "include",
			Aliases: []string{"I"},
			Usage:   "Add a directory searched for included files",
		},
		&cli.BoolFlag{
			Name:  "headers",
			Usage: "Check header files as translation units",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Do not check files matching the glob pattern",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Read settings from this YAML file (defaults to " + config.DefaultFile + " when present)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log included files and skipped directives",
		},
	}

	app.Action = func(c *cli.Context) error { return run(c, fsys) }

	return app
}

// settings are the merged configuration file and command line values.
type settings struct {
	includeDirs []string
	headers     bool
	exclude     []string
}

// loadSettings reads the configuration file and overlays the command line.
func loadSettings(c *cli.Context, fsys afero.Fs) (settings, error) {
	path, optional := c.String("config"), false
	if path == "" {
		path, optional = config.DefaultFile, true
	}

	file, err := config.Load(fsys, path, optional)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		includeDirs: slices.Concat(c.StringSlice("include"), file.IncludeDirs),
		exclude:     slices.Concat(file.Exclude, c.StringSlice("exclude")),
	}

	switch {
	case c.IsSet("headers"):
		s.headers = c.Bool("headers")

	case file.Headers != nil:
		s.headers = *file.Headers
	}

	return s, nil
}

func run(c *cli.Context, fsys afero.Fs) error {
	if c.NArg() == 0 {
		return errors.New("no files or directories given")
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	s, err := loadSettings(c, fsys)
	if err != nil {
		return err
	}

	filter, err := check.NewFilter(s.headers, s.exclude...)
	if err != nil {
		return err
	}

	units, err := collect(fsys, filter, c.Args().Slice())
	if err != nil {
		return err
	}

	ctx, task := trace.NewTask(c.Context, "PPCheck")
	defer task.End()

	cache, err := scan.NewCache(scan.DefaultCacheSize)
	if err != nil {
		return err
	}

	fset := token.NewFileSet()
	scanner := scan.New(fset, scan.Options{
		Fs:          fsys,
		IncludeDirs: s.includeDirs,
		Cache:       cache,
		Logger:      logger,
	})

	out := &report.Text{Fset: fset, Out: c.App.Writer}

	for _, path := range units {
		u, err := scanner.Open(path)
		if err != nil {
			return err
		}

		if err := check.Unit(ctx, u, out); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	logger.Debug("Check finished", slog.Int("files", len(units)), slog.Int("findings", out.Count))

	if out.Count > 0 {
		return ErrFindings
	}

	return nil
}

// collect lists the translation units named by args. Named files are always checked,
// directories are walked for files selected by filter.
func collect(fsys afero.Fs, filter check.Filter, args []string) ([]string, error) {
	var units []string

	for _, arg := range args {
		fi, err := fsys.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			units = append(units, arg)

			continue
		}

		err = afero.Walk(fsys, arg, func(path string, info fs.FileInfo, err error) error {
			switch {
			case err != nil:
				return err

			case info.IsDir():
				if path != arg && isHidden(info.Name()) {
					return filepath.SkipDir
				}

			case filter.Selected(path):
				units = append(units, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return units, nil
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
