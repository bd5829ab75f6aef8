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

// Equal reports whether a and b are structurally identical: same kind
// (dynamic type) and recursively-equal payloads. This is value equality,
// not reference identity, the same guarantee the reference implementation
// gets for free from Python namedtuples (nodes.py's Node/QualNode/...). It
// backs the substitution table's dedup rule (cursor.AddSubst) and the
// "substitution correctness" test property.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case Name:
		b, ok := b.(Name)
		return ok && a.Value == b.Value
	case Builtin:
		b, ok := b.(Builtin)
		return ok && a.Value == b.Value
	case Ctor:
		b, ok := b.(Ctor)
		return ok && a.Variant == b.Variant
	case Dtor:
		b, ok := b.(Dtor)
		return ok && a.Variant == b.Variant
	case Oper:
		b, ok := b.(Oper)
		return ok && a.Symbol == b.Symbol
	case TplParam:
		b, ok := b.(TplParam)
		return ok && a.Seq == b.Seq
	case Subst:
		b, ok := b.(Subst)
		return ok && a.Seq == b.Seq

	case OperCast:
		b, ok := b.(OperCast)
		return ok && Equal(a.Value, b.Value)
	case Pointer:
		b, ok := b.(Pointer)
		return ok && Equal(a.Value, b.Value)
	case LValue:
		b, ok := b.(LValue)
		return ok && Equal(a.Value, b.Value)
	case RValue:
		b, ok := b.(RValue)
		return ok && Equal(a.Value, b.Value)
	case ExpandArgPack:
		b, ok := b.(ExpandArgPack)
		return ok && Equal(a.Value, b.Value)
	case VTable:
		b, ok := b.(VTable)
		return ok && Equal(a.Value, b.Value)
	case VTT:
		b, ok := b.(VTT)
		return ok && Equal(a.Value, b.Value)
	case TypeInfo:
		b, ok := b.(TypeInfo)
		return ok && Equal(a.Value, b.Value)
	case TypeInfoName:
		b, ok := b.(TypeInfoName)
		return ok && Equal(a.Value, b.Value)
	case NonVirtThunk:
		b, ok := b.(NonVirtThunk)
		return ok && Equal(a.Value, b.Value)
	case VirtThunk:
		b, ok := b.(VirtThunk)
		return ok && Equal(a.Value, b.Value)
	case GuardVariable:
		b, ok := b.(GuardVariable)
		return ok && Equal(a.Value, b.Value)
	case TransactionClone:
		b, ok := b.(TransactionClone)
		return ok && Equal(a.Value, b.Value)

	case QualName:
		b, ok := b.(QualName)
		return ok && equalSlice(a.Value, b.Value)
	case TplArgs:
		b, ok := b.(TplArgs)
		return ok && equalSlice(a.Value, b.Value)
	case TplArgPack:
		b, ok := b.(TplArgPack)
		return ok && equalSlice(a.Value, b.Value)

	case CVQual:
		b, ok := b.(CVQual)
		return ok && a.Qual.Equal(b.Qual) && Equal(a.Value, b.Value)
	case ABI:
		b, ok := b.(ABI)
		return ok && a.Qual.Equal(b.Qual) && Equal(a.Value, b.Value)

	case Literal:
		b, ok := b.(Literal)
		return ok && a.Value == b.Value && Equal(a.Ty, b.Ty)
	case Func:
		b, ok := b.(Func)
		return ok && Equal(a.Name, b.Name) && Equal(a.RetTy, b.RetTy) &&
			equalSlice(a.ArgTys, b.ArgTys)
	case Array:
		b, ok := b.(Array)
		return ok && Equal(a.Dimension, b.Dimension) && Equal(a.Ty, b.Ty)
	case Member:
		b, ok := b.(Member)
		return ok && a.Kind == b.Kind && Equal(a.ClsTy, b.ClsTy) &&
			Equal(a.MemberTy, b.MemberTy)
	default:
		return false
	}
}

func equalSlice(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
