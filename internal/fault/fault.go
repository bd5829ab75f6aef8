// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fault provides the sentinel-error idiom the itanium package uses
// for its one recognized failure mode that isn't a plain "this production
// didn't match": an explicitly-rejected but recognized construct. The msvc
// package returns no errors and does not use it.
package fault

// Const is the type for constant error values, usable in a top-level
// "const Err... = fault.Const(...)" declaration.
type Const string

// Error implements error, returning the string value of the const.
func (e Const) Error() string { return string(e) }
