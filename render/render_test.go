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

package render_test

import (
	"testing"

	"github.com/google/cxxdemangle/ast"
	"github.com/google/cxxdemangle/internal/assert"
	"github.com/google/cxxdemangle/render"
)

func TestRenderShapes(t *testing.T) {
	for _, test := range []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "unqualified name",
			node: ast.Name{Value: "foo"},
			want: "foo",
		},
		{
			name: "qualified name",
			node: ast.QualName{Value: []ast.Node{
				ast.Name{Value: "std"},
				ast.Name{Value: "cout"},
			}},
			want: "std::cout",
		},
		{
			name: "function with arguments",
			node: ast.Func{
				Name:   ast.Name{Value: "foo"},
				ArgTys: []ast.Node{ast.Builtin{Value: "int"}},
			},
			want: "foo(int)",
		},
		{
			name: "niladic function renders () not (void)",
			node: ast.Func{
				Name:   ast.QualName{Value: []ast.Node{ast.Name{Value: "foo"}, ast.Name{Value: "bar"}}},
				ArgTys: []ast.Node{ast.Builtin{Value: "void"}},
			},
			want: "foo::bar()",
		},
		{
			name: "lvalue reference argument",
			node: ast.Func{
				Name: ast.QualName{Value: []ast.Node{
					ast.Name{Value: "wikipedia"},
					ast.Name{Value: "article"},
					ast.Name{Value: "print_to"},
				}},
				ArgTys: []ast.Node{ast.LValue{Value: ast.QualName{Value: []ast.Node{
					ast.Name{Value: "std"},
					ast.Name{Value: "ostream"},
				}}}},
			},
			want: "wikipedia::article::print_to(std::ostream&)",
		},
		{
			name: "const member function: qualifier prints after the parameter list",
			node: ast.Func{
				Name: ast.CVQual{
					Value: ast.QualName{Value: []ast.Node{ast.Name{Value: "foo"}, ast.Name{Value: "bar"}}},
					Qual:  ast.NewStringSet(ast.QualConst),
				},
				ArgTys: []ast.Node{ast.Builtin{Value: "void"}},
			},
			want: "foo::bar() const",
		},
		{
			name: "multiple cv-qualifiers print in fixed const/volatile/restrict order",
			node: ast.Func{
				Name: ast.CVQual{
					Value: ast.Name{Value: "foo"},
					Qual:  ast.NewStringSet(ast.QualRestrict, ast.QualVolatile, ast.QualConst),
				},
				ArgTys: []ast.Node{ast.Builtin{Value: "void"}},
			},
			want: "foo() const volatile restrict",
		},
		{
			name: "templated function after substitution",
			node: ast.Func{
				Name: ast.QualName{Value: []ast.Node{
					ast.Name{Value: "foo"},
					ast.TplArgs{Value: []ast.Node{ast.Builtin{Value: "int"}}},
				}},
				ArgTys: []ast.Node{ast.Builtin{Value: "int"}},
				RetTy:  ast.Builtin{Value: "void"},
			},
			want: "void foo<int>(int)",
		},
		{
			name: "vtable special",
			node: ast.VTable{Value: ast.Name{Value: "foo"}},
			want: "vtable for foo",
		},
		{
			name: "pointer to function",
			node: ast.Pointer{Value: ast.Func{
				ArgTys: []ast.Node{ast.Builtin{Value: "int"}},
				RetTy:  ast.Builtin{Value: "void"},
			}},
			want: "void (*)(int)",
		},
		{
			name: "pointer to array",
			node: ast.Pointer{Value: ast.Array{
				Dimension: ast.Literal{Value: 4, Ty: ast.Builtin{Value: "int"}},
				Ty:        ast.Builtin{Value: "int"},
			}},
			want: "int(*)[(int)4]",
		},
		{
			name: "member data pointer",
			node: ast.Member{
				Kind:     ast.MemberData,
				ClsTy:    ast.Name{Value: "foo"},
				MemberTy: ast.Builtin{Value: "int"},
			},
			want: "int foo::*",
		},
		{
			name: "member function pointer",
			node: ast.Member{
				Kind:  ast.MemberMethod,
				ClsTy: ast.Name{Value: "foo"},
				MemberTy: ast.Func{
					ArgTys: []ast.Node{ast.Builtin{Value: "void"}},
					RetTy:  ast.Builtin{Value: "int"},
				},
			},
			want: "int (foo::*)()",
		},
		{
			name: "abi tag",
			node: ast.ABI{Value: ast.Name{Value: "foo"}, Qual: ast.NewStringSet("cxx11")},
			want: "foo[abi:cxx11]",
		},
		{
			name: "conversion operator",
			node: ast.OperCast{Value: ast.Builtin{Value: "bool"}},
			want: "operator bool",
		},
		{
			name: "new operator keeps the space before its symbol",
			node: ast.QualName{Value: []ast.Node{
				ast.Oper{Symbol: "new"},
			}},
			want: "operator new",
		},
		{
			name: "arithmetic operator has no space before its symbol",
			node: ast.QualName{Value: []ast.Node{
				ast.Oper{Symbol: "+"},
			}},
			want: "operator+",
		},
		{
			name: "literal",
			node: ast.Literal{Value: "42", Ty: ast.Builtin{Value: "int"}},
			want: "(int)42",
		},
	} {
		got := render.Render(test.node)
		assert.For(t, "Render(%s)", test.name).That(got).Equals(test.want)
	}
}

func TestRenderIsPure(t *testing.T) {
	node := ast.Func{
		Name:   ast.Name{Value: "foo"},
		ArgTys: []ast.Node{ast.Builtin{Value: "int"}},
	}
	first := render.Render(node)
	second := render.Render(node)
	assert.For(t, "Render called twice").That(second).Equals(first)
}
