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

var ctorDtorMap = map[string]string{
	"C1": ast.CtorComplete,
	"C2": ast.CtorBase,
	"C3": ast.CtorAllocating,
	"D0": ast.DtorDeleting,
	"D1": ast.DtorComplete,
	"D2": ast.DtorBase,
}

var stdNames = map[string][]ast.Node{
	"St": {ast.Name{Value: "std"}},
	"Sa": {ast.Name{Value: "std"}, ast.Name{Value: "allocator"}},
	"Sb": {ast.Name{Value: "std"}, ast.Name{Value: "basic_string"}},
	"Ss": {ast.Name{Value: "std"}, ast.Name{Value: "string"}},
	"Si": {ast.Name{Value: "std"}, ast.Name{Value: "istream"}},
	"So": {ast.Name{Value: "std"}, ast.Name{Value: "ostream"}},
	"Sd": {ast.Name{Value: "std"}, ast.Name{Value: "iostream"}},
}

// stdNameCodes is stdNames' keys minus "St" (which is tried as its own,
// later alternative), in a fixed order so the cursor is probed
// deterministically.
var stdNameCodes = []string{"Sa", "Sb", "Ss", "Si", "So", "Sd"}

// operatorCodes is operators' keys in a fixed order. Every code is exactly
// two bytes and the set is prefix-free, so the order only affects which
// key is probed first, never correctness.
var operatorCodes = []string{
	"nw", "na", "dl", "da", "ps", "ng", "ad", "de", "co", "pl", "mi", "ml",
	"dv", "rm", "an", "or", "eo", "aS", "pL", "mI", "mL", "dV", "rM", "aN",
	"oR", "eO", "ls", "rs", "lS", "rS", "eq", "ne", "lt", "gt", "le", "ge",
	"nt", "aa", "oo", "pp", "mm", "cm", "pm", "pt", "cl", "ix", "qu",
}

// operators lists every two-letter operator code this module recognizes,
// longest-prefix-independent since every code is exactly two bytes.
var operators = map[string]string{
	"nw": "new",
	"na": "new[]",
	"dl": "delete",
	"da": "delete[]",
	"ps": "+", // (unary)
	"ng": "-", // (unary)
	"ad": "&", // (unary)
	"de": "*", // (unary)
	"co": "~",
	"pl": "+",
	"mi": "-",
	"ml": "*",
	"dv": "/",
	"rm": "%",
	"an": "&",
	"or": "|",
	"eo": "^",
	"aS": "=",
	"pL": "+=",
	"mI": "-=",
	"mL": "*=",
	"dV": "/=",
	"rM": "%=",
	"aN": "&=",
	"oR": "|=",
	"eO": "^=",
	"ls": "<<",
	"rs": ">>",
	"lS": "<<=",
	"rS": ">>=",
	"eq": "==",
	"ne": "!=",
	"lt": "<",
	"gt": ">",
	"le": "<=",
	"ge": ">=",
	"nt": "!",
	"aa": "&&",
	"oo": "||",
	"pp": "++", // (postfix in <expression> context)
	"mm": "--", // (postfix in <expression> context)
	"cm": ",",
	"pm": "->*",
	"pt": "->",
	"cl": "()",
	"ix": "[]",
	"qu": "?",
}

var builtinTypes = map[string]ast.Node{
	"v":  ast.Builtin{Value: "void"},
	"w":  ast.Builtin{Value: "wchar_t"},
	"b":  ast.Builtin{Value: "bool"},
	"c":  ast.Builtin{Value: "char"},
	"a":  ast.Builtin{Value: "signed char"},
	"h":  ast.Builtin{Value: "unsigned char"},
	"s":  ast.Builtin{Value: "short"},
	"t":  ast.Builtin{Value: "unsigned short"},
	"i":  ast.Builtin{Value: "int"},
	"j":  ast.Builtin{Value: "unsigned int"},
	"l":  ast.Builtin{Value: "long"},
	"m":  ast.Builtin{Value: "unsigned long"},
	"x":  ast.Builtin{Value: "long long"},
	"y":  ast.Builtin{Value: "unsigned long long"},
	"n":  ast.Builtin{Value: "__int128"},
	"o":  ast.Builtin{Value: "unsigned __int128"},
	"f":  ast.Builtin{Value: "float"},
	"d":  ast.Builtin{Value: "double"},
	"e":  ast.Builtin{Value: "__float80"},
	"g":  ast.Builtin{Value: "__float128"},
	"z":  ast.Builtin{Value: "..."},
	"Dd": ast.Builtin{Value: "_Decimal64"},
	"De": ast.Builtin{Value: "_Decimal128"},
	"Df": ast.Builtin{Value: "_Decimal32"},
	"Dh": ast.Builtin{Value: "_Float16"},
	"Di": ast.Builtin{Value: "char32_t"},
	"Ds": ast.Builtin{Value: "char16_t"},
	"Da": ast.Builtin{Value: "auto"},
	"Dn": ast.QualName{Value: []ast.Node{ast.Name{Value: "std"}, ast.Name{Value: "nullptr_t"}}},
}

// builtinOrder lists builtinTypes' keys longest-first, so a greedy scan
// never matches "D" + letter prefixes of a different, longer code (there
// are none that collide today, but the order keeps the contract explicit).
var builtinOrder = []string{
	"Dd", "De", "Df", "Dh", "Di", "Ds", "Da", "Dn",
	"v", "w", "b", "c", "a", "h", "s", "t", "i", "j", "l", "m", "x", "y",
	"n", "o", "f", "d", "e", "g", "z",
}
