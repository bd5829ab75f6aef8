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

package itanium

import "github.com/google/cxxdemangle/ast"

// substituteTemplateParams binds each ast.TplParam reachable from fn to the
// corresponding element of fn's own trailing TplArgs, if it has one. It is
// applied once per encoding, immediately after a templated Func is built,
// so a TplParam can only ever refer to the template argument list attached
// to its own enclosing function (this grammar has no nested generic
// scopes).
func substituteTemplateParams(fn ast.Func) ast.Node {
	qn, ok := fn.Name.(ast.QualName)
	if !ok || len(qn.Value) == 0 {
		return fn
	}
	tplArgs, ok := qn.Value[len(qn.Value)-1].(ast.TplArgs)
	if !ok {
		return fn
	}

	var substitute func(ast.Node) ast.Node
	substitute = func(n ast.Node) ast.Node {
		if n == nil {
			return nil
		}
		if tp, ok := n.(ast.TplParam); ok && tp.Seq >= 0 && tp.Seq < len(tplArgs.Value) {
			return tplArgs.Value[tp.Seq]
		}
		return ast.Map(n, substitute)
	}
	return substitute(fn)
}

// expandArgPacks splices every pack-expansion site in n with the pack it
// refers to. It runs exactly once, over the whole tree, after the entire
// top-level parse has succeeded (unlike substituteTemplateParams, which
// runs locally per encoding).
func expandArgPacks(n ast.Node) ast.Node {
	var expand func(ast.Node) ast.Node
	expand = func(n ast.Node) ast.Node {
		if n == nil {
			return nil
		}
		switch n := n.(type) {
		case ast.TplArgs:
			var flattened []ast.Node
			for _, arg := range n.Value {
				switch arg := arg.(type) {
				case ast.TplArgPack:
					flattened = append(flattened, arg.Value...)
				case ast.TplArgs:
					flattened = append(flattened, arg.Value...)
				default:
					flattened = append(flattened, arg)
				}
			}
			mapped := make([]ast.Node, len(flattened))
			for i, a := range flattened {
				mapped[i] = expand(a)
			}
			return ast.TplArgs{Value: mapped}

		case ast.Func:
			mapped := ast.Map(n, expand).(ast.Func)
			var argTys []ast.Node
			for _, argTy := range mapped.ArgTys {
				if eap, ok := argTy.(ast.ExpandArgPack); ok {
					if rv, ok := eap.Value.(ast.RValue); ok {
						switch pack := rv.Value.(type) {
						case ast.TplArgPack:
							argTys = append(argTys, pack.Value...)
							continue
						case ast.TplArgs:
							argTys = append(argTys, pack.Value...)
							continue
						}
					}
				}
				argTys = append(argTys, argTy)
			}
			mapped.ArgTys = argTys
			return mapped

		default:
			return ast.Map(n, expand)
		}
	}
	return expand(n)
}
