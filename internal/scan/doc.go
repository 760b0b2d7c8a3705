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

// Package scan delivers the conditional directives of C, C++ and assembly
// translation units in lexical order.
//
// The scanner follows #include directives through an [afero.Fs], so directives
// of included files arrive at the point of inclusion. Conditions are never
// evaluated: every directive of every branch is delivered, and every include
// that can be resolved is entered.
package scan
