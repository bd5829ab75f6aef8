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

package msvc_test

import (
	"testing"

	"github.com/google/cxxdemangle/ast"
	"github.com/google/cxxdemangle/internal/assert"
	"github.com/google/cxxdemangle/msvc"
	"github.com/google/cxxdemangle/render"
)

// TestFunctionEncodingYieldsBareName covers end-to-end scenario 8: the
// function-encoding tail is out of scope, but the <name> portion still
// comes back.
func TestFunctionEncodingYieldsBareName(t *testing.T) {
	node, err := msvc.Demangle([]byte("?foo@@YAHXZ"))
	if err != nil {
		t.Fatalf("Demangle: unexpected error: %v", err)
	}
	if node == nil {
		t.Fatalf("Demangle(?foo@@YAHXZ): got nil, want the name node")
	}
	got := render.Render(node)
	assert.For(t, "render(demangle(function encoding))").That(got).Equals("foo")
}

func TestQualifiedName(t *testing.T) {
	node, err := msvc.Demangle([]byte("?bar@foo@@"))
	if err != nil {
		t.Fatalf("Demangle: unexpected error: %v", err)
	}
	assert.For(t, "Demangle(?bar@foo@@)").ThatNode(node).Equals(ast.QualName{Value: []ast.Node{
		ast.Name{Value: "foo"},
		ast.Name{Value: "bar"},
	}})
}

func TestCtorName(t *testing.T) {
	node, err := msvc.Demangle([]byte("??0foo@@"))
	if err != nil {
		t.Fatalf("Demangle: unexpected error: %v", err)
	}
	assert.For(t, "Demangle(??0foo@@)").ThatNode(node).Equals(ast.QualName{Value: []ast.Node{
		ast.Name{Value: "foo"},
		ast.Ctor{Variant: ast.CtorComplete},
	}})
}

func TestUnimplementedFragmentsReturnNil(t *testing.T) {
	for _, mangled := range []string{
		"?foo@?$bar@H@@", // templated name
		"",
		"not mangled",
	} {
		node, err := msvc.Demangle([]byte(mangled))
		if err != nil {
			t.Fatalf("Demangle(%q): unexpected error: %v", mangled, err)
		}
		assert.For(t, "Demangle(%q)", mangled).That(node).IsNil()
	}
}
