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

// Package render unparses an AST back into canonical, human-readable C++
// syntax. The core of it is the classic left/right declarator split: most
// shapes print themselves whole via str and report an empty right, but
// pointer/lvalue/rvalue/func/array/method-member split their rendering so
// a pointer-to-function or pointer-to-array prints with its "*" correctly
// nested inside the declarator ("void (*)(int)", not "void*(int)").
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cxxdemangle/ast"
)

// Render converts n to its canonical C++ textual form.
func Render(n ast.Node) string {
	return str(n)
}

func joinStr(nodes []ast.Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = str(n)
	}
	return strings.Join(parts, sep)
}

func isVoidOnly(argTys []ast.Node) bool {
	if len(argTys) != 1 {
		return false
	}
	b, ok := argTys[0].(ast.Builtin)
	return ok && b.Value == "void"
}

// splitFuncQual separates a method's cv-qualifiers from its name. A
// nested-name's trailing cv-qualifiers mangle as a CVQual wrapping the
// whole name ("NK3foo3barEv"'s name is cv_qual(foo::bar, {const})), but
// real C++ declarator syntax prints them after the parameter list
// ("foo::bar() const"), not next to the name. Func's renderer strips the
// CVQual here and reattaches the qualifier words at the end instead of
// embedding them in the name, the way every other node kind's str would.
func splitFuncQual(name ast.Node) (ast.Node, []string) {
	if cvq, ok := name.(ast.CVQual); ok {
		return cvq.Value, cvq.Qual.Sorted()
	}
	return name, nil
}

// str renders n in full, as it would appear standing alone (never as the
// pointee of an enclosing pointer/lvalue/rvalue).
func str(n ast.Node) string {
	switch n := n.(type) {
	case ast.Name:
		return n.Value
	case ast.Builtin:
		return n.Value

	case ast.QualName:
		var b strings.Builder
		for _, comp := range n.Value {
			if b.Len() != 0 {
				if _, isTplArgs := comp.(ast.TplArgs); !isTplArgs {
					b.WriteString("::")
				}
			}
			b.WriteString(str(comp))
		}
		return b.String()

	case ast.TplArgs:
		return "<" + joinStr(n.Value, ", ") + ">"
	case ast.TplArgPack:
		// Should never survive to render time: itanium.Demangle always
		// runs pack expansion before returning. Rendered plainly if it
		// does, rather than panicking.
		return joinStr(n.Value, ", ")

	case ast.Ctor:
		switch n.Variant {
		case ast.CtorComplete:
			return "{ctor}"
		case ast.CtorBase:
			return "{base ctor}"
		case ast.CtorAllocating:
			return "{allocating ctor}"
		default:
			panic("render: unknown ctor variant " + n.Variant)
		}
	case ast.Dtor:
		switch n.Variant {
		case ast.DtorDeleting:
			return "{deleting dtor}"
		case ast.DtorComplete:
			return "{dtor}"
		case ast.DtorBase:
			return "{base dtor}"
		default:
			panic("render: unknown dtor variant " + n.Variant)
		}

	case ast.Oper:
		if strings.HasPrefix(n.Symbol, "new") || strings.HasPrefix(n.Symbol, "delete") {
			return "operator " + n.Symbol
		}
		return "operator" + n.Symbol
	case ast.OperCast:
		return "operator " + str(n.Value)

	case ast.Pointer:
		return left(n.Value) + "*" + right(n.Value)
	case ast.LValue:
		return left(n.Value) + "&" + right(n.Value)
	case ast.RValue:
		return left(n.Value) + "&&" + right(n.Value)

	case ast.TplParam:
		return "{T" + strconv.Itoa(n.Seq) + "}"
	case ast.Subst:
		return "{S" + strconv.Itoa(n.Seq) + "}"

	case ast.VTable:
		return "vtable for " + str(n.Value)
	case ast.VTT:
		return "vtt for " + str(n.Value)
	case ast.TypeInfo:
		return "typeinfo for " + str(n.Value)
	case ast.TypeInfoName:
		return "typeinfo name for " + str(n.Value)
	case ast.NonVirtThunk:
		return "non-virtual thunk for " + str(n.Value)
	case ast.VirtThunk:
		return "virtual thunk for " + str(n.Value)
	case ast.GuardVariable:
		return "guard variable for " + str(n.Value)
	case ast.TransactionClone:
		return "transaction clone for " + str(n.Value)

	case ast.ABI:
		var b strings.Builder
		b.WriteString(str(n.Value))
		for _, tag := range n.Qual.Sorted() {
			b.WriteString("[abi:" + tag + "]")
		}
		return b.String()
	case ast.CVQual:
		words := append([]string{str(n.Value)}, n.Qual.Sorted()...)
		return strings.Join(words, " ")

	case ast.Literal:
		return "(" + str(n.Ty) + ")" + fmt.Sprint(n.Value)

	case ast.Func:
		name, quals := splitFuncQual(n.Name)
		var b strings.Builder
		if n.RetTy != nil {
			b.WriteString(str(n.RetTy))
			b.WriteString(" ")
		}
		if name != nil {
			b.WriteString(str(name))
		}
		if isVoidOnly(n.ArgTys) {
			b.WriteString("()")
		} else {
			b.WriteString("(" + joinStr(n.ArgTys, ", ") + ")")
		}
		for _, q := range quals {
			b.WriteString(" " + q)
		}
		return b.String()

	case ast.Array:
		return str(n.Ty) + "[" + str(n.Dimension) + "]"

	case ast.Member:
		if n.Kind == ast.MemberMethod {
			return left(n.MemberTy) + str(n.ClsTy) + "::*" + right(n.MemberTy)
		}
		return str(n.MemberTy) + " " + str(n.ClsTy) + "::*"

	default:
		panic(fmt.Sprintf("render: unhandled node type %T", n))
	}
}

// left is str's declarator-prefix half, used when n is the pointee of an
// enclosing pointer/lvalue/rvalue.
func left(n ast.Node) string {
	switch n := n.(type) {
	case ast.Pointer:
		return left(n.Value) + "*"
	case ast.LValue:
		return left(n.Value) + "&"
	case ast.RValue:
		return left(n.Value) + "&&"

	case ast.Func:
		name, _ := splitFuncQual(n.Name)
		var b strings.Builder
		if n.RetTy != nil {
			b.WriteString(str(n.RetTy))
			b.WriteString(" ")
		}
		b.WriteString("(")
		if name != nil {
			b.WriteString(str(name))
		}
		return b.String()

	case ast.Array:
		return str(n.Ty) + "("

	case ast.Member:
		if n.Kind == ast.MemberMethod {
			return left(n.MemberTy) + str(n.ClsTy) + "::*"
		}
		return str(n)

	default:
		return str(n)
	}
}

// right is str's declarator-suffix half.
func right(n ast.Node) string {
	switch n := n.(type) {
	case ast.Pointer:
		return right(n.Value)
	case ast.LValue:
		return right(n.Value)
	case ast.RValue:
		return right(n.Value)

	case ast.Func:
		_, quals := splitFuncQual(n.Name)
		result := ")"
		if isVoidOnly(n.ArgTys) {
			result += "()"
		} else {
			result += "(" + joinStr(n.ArgTys, ", ") + ")"
		}
		for _, q := range quals {
			result += " " + q
		}
		return result

	case ast.Array:
		return ")[" + str(n.Dimension) + "]"

	case ast.Member:
		if n.Kind == ast.MemberMethod {
			return right(n.MemberTy)
		}
		return ""

	default:
		return ""
	}
}
