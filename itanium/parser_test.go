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

package itanium_test

import (
	"testing"

	stderrors "github.com/pkg/errors"

	"github.com/google/cxxdemangle/internal/assert"
	"github.com/google/cxxdemangle/itanium"
	"github.com/google/cxxdemangle/render"
)

func TestDemangleEndToEnd(t *testing.T) {
	for _, test := range []struct {
		mangled string
		want    string
	}{
		{"_ZSt4cout", "std::cout"},
		{"_Z3fooi", "foo(int)"},
		{"_ZN3foo3barEv", "foo::bar()"},
		{"_ZN9wikipedia7article8print_toERSo", "wikipedia::article::print_to(std::ostream&)"},
		{"_ZNK3foo3barEv", "foo::bar() const"},
		{"_Z3fooIiEvT_", "void foo<int>(int)"},
		{"_ZTV3foo", "vtable for foo"},
	} {
		node, err := itanium.Demangle([]byte(test.mangled))
		if err != nil {
			t.Fatalf("Demangle(%q): unexpected error: %v", test.mangled, err)
		}
		got := render.Render(node)
		assert.For(t, "render(demangle(%s))", test.mangled).That(got).Equals(test.want)
	}
}

func TestDemangleMalformedInputReturnsNil(t *testing.T) {
	for _, mangled := range []string{
		"",
		"not mangled at all",
		"_Z",
		"_Zfoo",
	} {
		node, err := itanium.Demangle([]byte(mangled))
		if err != nil {
			t.Fatalf("Demangle(%q): unexpected error: %v", mangled, err)
		}
		assert.For(t, "Demangle(%q)", mangled).That(node).IsNil()
	}
}

func TestDemangleUnsupportedConstructs(t *testing.T) {
	for _, mangled := range []string{
		"_ZZ3fooEvi",  // local name
		"_Z3fooUt_Ev", // function taking an unnamed-type argument
	} {
		node, err := itanium.Demangle([]byte(mangled))
		assert.For(t, "Demangle(%q) node", mangled).That(node).IsNil()
		if err == nil {
			t.Errorf("Demangle(%q): want an error, got nil", mangled)
			continue
		}
		if !stderrors.Is(err, itanium.ErrUnsupported) {
			t.Errorf("Demangle(%q): got error %v, want one wrapping ErrUnsupported", mangled, err)
		}
	}
}

// TestSubstitutionCorrectness checks that a mangled name using a
// back-reference produces a structurally identical AST to the same name
// with the back-reference spelled out in full.
func TestSubstitutionCorrectness(t *testing.T) {
	withSubst, err := itanium.Demangle([]byte("_Z3fooRKiS0_"))
	if err != nil {
		t.Fatalf("Demangle(with substitution): unexpected error: %v", err)
	}
	spelledOut, err := itanium.Demangle([]byte("_Z3fooRKiRKi"))
	if err != nil {
		t.Fatalf("Demangle(spelled out): unexpected error: %v", err)
	}
	assert.For(t, "substituted vs spelled-out arg list").ThatNode(withSubst).Equals(spelledOut)
}

// TestPackExpansion checks both halves of the pack-expansion law: a
// tpl_arg_pack spliced into its enclosing tpl_args, and an
// expand_arg_pack(rvalue(pack)) argument spliced into the function's
// argument list without being re-wrapped.
func TestPackExpansion(t *testing.T) {
	node, err := itanium.Demangle([]byte("_Z3fooIJifEEvDpOT_"))
	if err != nil {
		t.Fatalf("Demangle: unexpected error: %v", err)
	}
	got := render.Render(node)
	assert.For(t, "render(demangle(pack expansion))").That(got).Equals("void foo<int, float>(int, float)")
}
