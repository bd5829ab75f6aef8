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

// Map returns a copy of n with f applied to each of n's immediate
// semantic children, leaving n unchanged if it has none. It is the single
// structural-polymorphism primitive both rewriter passes (itanium's
// substituteTemplateParams and expandArgPacks) are built from.
//
// Three shapes recurse into only part of what looks like their full child
// set, matching the reference implementation (nodes.py) exactly rather
// than "fixing" what looks like an oversight there:
//   - ABI does not recurse into its wrapped name (only CVQual does, among
//     the two qualified shapes).
//   - NonVirtThunk, VirtThunk, GuardVariable, and TransactionClone do not
//     recurse into their wrapped function/type (only VTable, VTT,
//     TypeInfo, and TypeInfoName do, among the RTTI-ish specials).
//   - Member only recurses when Kind is "data"; a "method" member is left
//     untouched.
func Map(n Node, f func(Node) Node) Node {
	switch n := n.(type) {
	case OperCast:
		return OperCast{Value: f(n.Value)}
	case Pointer:
		return Pointer{Value: f(n.Value)}
	case LValue:
		return LValue{Value: f(n.Value)}
	case RValue:
		return RValue{Value: f(n.Value)}
	case ExpandArgPack:
		return ExpandArgPack{Value: f(n.Value)}
	case VTable:
		return VTable{Value: f(n.Value)}
	case VTT:
		return VTT{Value: f(n.Value)}
	case TypeInfo:
		return TypeInfo{Value: f(n.Value)}
	case TypeInfoName:
		return TypeInfoName{Value: f(n.Value)}

	case QualName:
		return QualName{Value: mapSlice(n.Value, f)}
	case TplArgs:
		return TplArgs{Value: mapSlice(n.Value, f)}
	case TplArgPack:
		return TplArgPack{Value: mapSlice(n.Value, f)}

	case CVQual:
		return CVQual{Value: f(n.Value), Qual: n.Qual}

	case Literal:
		return Literal{Value: n.Value, Ty: f(n.Ty)}

	case Func:
		var name, retTy Node
		if n.Name != nil {
			name = f(n.Name)
		}
		if n.RetTy != nil {
			retTy = f(n.RetTy)
		}
		return Func{Name: name, ArgTys: mapSlice(n.ArgTys, f), RetTy: retTy}

	case Array:
		dim, ty := n.Dimension, n.Ty
		if dim != nil {
			dim = f(dim)
		}
		if ty != nil {
			ty = f(ty)
		}
		return Array{Dimension: dim, Ty: ty}

	case Member:
		if n.Kind != MemberData {
			return n
		}
		return Member{Kind: n.Kind, ClsTy: f(n.ClsTy), MemberTy: f(n.MemberTy)}

	default:
		return n
	}
}

func mapSlice(in []Node, f func(Node) Node) []Node {
	out := make([]Node, len(in))
	for i, n := range in {
		out[i] = f(n)
	}
	return out
}
