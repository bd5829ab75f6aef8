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

// Literal is a value of a given type. Value is preserved verbatim from the
// input: a string for everything except an array dimension, which is
// parsed to an int and given Ty Builtin{"int"}. The ABI permits literal
// formats (hex floats, mangled NaNs) this module has no reason to parse
// further, so it does not.
type Literal struct {
	Value interface{} // string, or int for an array dimension
	Ty    Node
}

func (Literal) isNode() {}

// Func is a function type or declaration. Name is nil for a bare function
// type (as produced by the "F" type encoding). A bare function type always
// carries its return type in RetTy; for a named function, RetTy is non-nil
// only when the function is templated and the mangling therefore needed an
// explicit return type.
type Func struct {
	Name   Node // nilable
	ArgTys []Node
	RetTy  Node // nilable
}

func (Func) isNode() {}

// Array is a fixed-size array type, "Ty[Dimension]". Dimension is always a
// Literal node typed Builtin{"int"}.
type Array struct {
	Dimension Node
	Ty        Node
}

func (Array) isNode() {}

// Member data/method kinds.
const (
	MemberData   = "data"
	MemberMethod = "method"
)

// Member is a pointer-to-member type: pointer-to-data if MemberTy is not a
// Func, pointer-to-method otherwise.
type Member struct {
	Kind     string
	ClsTy    Node
	MemberTy Node
}

func (Member) isNode() {}
