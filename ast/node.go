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

// Package ast holds the abstract syntax tree produced by demangling a
// mangled C++ symbol, and the two structural operations (Map and Equal)
// every later pass in the pipeline is built from.
//
// Name nodes:
//   - Name holds an unqualified identifier.
//   - Ctor/Dtor hold the constructor/destructor variant ("complete", "base",
//     "allocating" for Ctor; "deleting", "complete", "base" for Dtor).
//   - Oper holds a symbolic operator name, without the keyword "operator".
//   - OperCast holds the type a conversion operator converts to.
//   - TplArgs holds an ordered sequence of type nodes.
//   - QualName holds the "::"-separated components of a qualified name,
//     possibly ending in a TplArgs, Ctor, Dtor, or OperCast.
//   - ABI wraps a name with the set of ABI tags attached to it.
//
// Type nodes:
//   - Name and QualName also specify a type, by name.
//   - Builtin names a builtin type.
//   - Pointer, LValue and RValue wrap a pointee type.
//   - CVQual wraps a type with a set of "const"/"volatile"/"restrict".
//   - Literal holds a value (string or int) and the type of that value.
//   - Func holds an optional name, the argument types, and a return type
//     (always for a bare function type; for a named function, only when it
//     is templated).
//
// Special nodes:
//   - VTable, VTT, TypeInfo, TypeInfoName wrap the type described by that
//     RTTI structure.
//   - NonVirtThunk, VirtThunk, TransactionClone wrap the function a thunk or
//     clone dispatches to.
package ast

// Node is implemented by every shape in the AST. It carries no behavior of
// its own; the concrete type of a Node is its "kind" discriminant, and a
// type switch over that is how every pass in the pipeline descends.
type Node interface {
	isNode()
}
