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

// OperCast is a conversion operator, e.g. "operator int". Value is the
// target type.
type OperCast struct {
	Value Node
}

func (OperCast) isNode() {}

// Pointer wraps a pointee type: "T*".
type Pointer struct {
	Value Node
}

func (Pointer) isNode() {}

// LValue wraps a pointee type: "T&".
type LValue struct {
	Value Node
}

func (LValue) isNode() {}

// RValue wraps a pointee type: "T&&".
type RValue struct {
	Value Node
}

func (RValue) isNode() {}

// ExpandArgPack marks a type as a pack-expansion site. The rewriter splices
// the referenced pack in place of a function argument of this shape only
// when it wraps an RValue of a pack; any other ExpandArgPack is left as is.
type ExpandArgPack struct {
	Value Node
}

func (ExpandArgPack) isNode() {}

// VTable is the "vtable for <type>" special.
type VTable struct {
	Value Node
}

func (VTable) isNode() {}

// VTT is the "vtt for <type>" special (virtual table table).
type VTT struct {
	Value Node
}

func (VTT) isNode() {}

// TypeInfo is the "typeinfo for <type>" special.
type TypeInfo struct {
	Value Node
}

func (TypeInfo) isNode() {}

// TypeInfoName is the "typeinfo name for <type>" special.
type TypeInfoName struct {
	Value Node
}

func (TypeInfoName) isNode() {}

// NonVirtThunk is the "non-virtual thunk for <func>" special. The thunk's
// offset is consumed during parsing but not retained here.
type NonVirtThunk struct {
	Value Node
}

func (NonVirtThunk) isNode() {}

// VirtThunk is the "virtual thunk for <func>" special. The thunk's call and
// vcall offsets are consumed during parsing but not retained here.
type VirtThunk struct {
	Value Node
}

func (VirtThunk) isNode() {}

// GuardVariable is the "guard variable for <type>" special.
type GuardVariable struct {
	Value Node
}

func (GuardVariable) isNode() {}

// TransactionClone is the "transaction clone for <func>" special.
type TransactionClone struct {
	Value Node
}

func (TransactionClone) isNode() {}
