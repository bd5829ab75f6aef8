// Copyright (C) 2018 Google Inc.
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

package itanium

import "github.com/google/cxxdemangle/internal/fault"

// ErrUnsupported is returned, wrapped with context via
// github.com/pkg/errors, when the input contains a recognized but
// explicitly-rejected construct: a local name ("Z"), an unnamed type
// ("Ut"), a closure type ("Ul"), an expression ("X"), a decltype ("Dt" or
// "DT"), a covariant thunk ("Tc"), or an extended temporary ("GR").
// Callers can distinguish this from a plain malformed-input nil with
// errors.Is(err, itanium.ErrUnsupported).
const ErrUnsupported = fault.Const("unsupported construct")
