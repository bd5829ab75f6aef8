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

package ast

// Ctor variants, per the Itanium ABI's C1/C2/C3 encodings.
const (
	CtorComplete   = "complete"
	CtorBase       = "base"
	CtorAllocating = "allocating"
)

// Dtor variants, per the Itanium ABI's D0/D1/D2 encodings.
const (
	DtorDeleting = "deleting"
	DtorComplete = "complete"
	DtorBase     = "base"
)

// Name holds an unqualified identifier, e.g. the "bar" in "foo::bar".
type Name struct {
	Value string
}

func (Name) isNode() {}

// Builtin names a builtin type such as "int" or "unsigned long long".
type Builtin struct {
	Value string
}

func (Builtin) isNode() {}

// Ctor names a constructor, distinguishing the complete/base/allocating
// object variants the Itanium ABI mangles separately.
type Ctor struct {
	Variant string
}

func (Ctor) isNode() {}

// Dtor names a destructor, distinguishing the deleting/complete/base
// variants the Itanium ABI mangles separately.
type Dtor struct {
	Variant string
}

func (Dtor) isNode() {}

// Oper names an operator by its symbol, e.g. "+" or "new[]", without the
// leading keyword "operator".
type Oper struct {
	Symbol string
}

func (Oper) isNode() {}

// TplParam is a reference to the Seq'th template parameter of the innermost
// enclosing TplArgs attached to the function being demangled.
type TplParam struct {
	Seq int
}

func (TplParam) isNode() {}

// Subst is a back-reference into the substitution table, by sequence id.
// The Itanium parser never constructs this node directly: resolving a
// substitution splices in the table entry itself (see cursor.ResolveSubst).
// It exists as a shape so the AST's kind inventory stays complete.
type Subst struct {
	Seq int
}

func (Subst) isNode() {}
