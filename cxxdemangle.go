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

// Package cxxdemangle demangles C++ symbol names mangled under either the
// Itanium C++ ABI or (partially) the MSVC scheme, and renders the result
// back to human-readable C++ syntax.
package cxxdemangle

import (
	"github.com/google/cxxdemangle/ast"
	"github.com/google/cxxdemangle/itanium"
	"github.com/google/cxxdemangle/msvc"
	"github.com/google/cxxdemangle/render"
)

// Itanium parses raw as an Itanium C++ ABI mangled name and returns its
// AST. It returns (nil, nil) if raw is not a recognized mangled name, and a
// non-nil error, wrapping itanium.ErrUnsupported, if raw names a recognized
// but unsupported construct (a local name, a closure type, an expression,
// and so on).
func Itanium(raw []byte) (ast.Node, error) {
	return itanium.Demangle(raw)
}

// MSVC parses raw as an MSVC mangled name and returns its AST. It returns
// (nil, nil) if raw is not a recognized mangled name, or if its name uses
// a construct this package's MSVC support does not cover (a templated
// name, a numbered namespace, or a substitution reference). For a data or
// function encoding it returns the name alone; the type information that
// follows the name is not decoded.
func MSVC(raw []byte) (ast.Node, error) {
	return msvc.Demangle(raw)
}

// Render converts an AST produced by Itanium or MSVC back to its canonical
// C++ textual form.
func Render(n ast.Node) string {
	return render.Render(n)
}
