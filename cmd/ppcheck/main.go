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

// Command ppcheck reports redundant nested conditional directives in C, C++ and assembly trees.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"fillmore-labs.com/condguard/internal/ppcheck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := ppcheck.NewApp(afero.NewReadOnlyFs(afero.NewOsFs())).RunContext(ctx, os.Args)

	stop()

	if err != nil {
		if !errors.Is(err, ppcheck.ErrFindings) {
			_, _ = fmt.Fprintf(os.Stderr, "ppcheck: %v\n", err)
		}

		os.Exit(1)
	}
}
