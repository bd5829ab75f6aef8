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

package msvc

// operatorCodes lists operators' keys in a fixed order. No key is a prefix
// of another (every single-letter/digit code is distinct from every
// "_"-prefixed two-byte code), so the order only affects which key gets
// probed first, never correctness.
var operatorCodes = []string{
	"2", "_U", "3", "_V", "4", "5", "6", "7", "8", "9",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N",
	"O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"_0", "_1", "_2", "_3", "_4", "_5", "_6",
}

var operators = map[string]string{
	"2":  "new",
	"_U": "new[]",
	"3":  "delete",
	"_V": "delete[]",
	"4":  "=",
	"5":  ">>",
	"6":  "<<",
	"7":  "!",
	"8":  "==",
	"9":  "!=",
	"A":  "[]",
	"B":  "returntype",
	"C":  "->",
	"D":  "*",
	"E":  "++",
	"F":  "--",
	"G":  "-",
	"H":  "+",
	"I":  "&",
	"J":  "->*",
	"K":  "/",
	"L":  "%",
	"M":  "<",
	"N":  "<=",
	"O":  ">",
	"P":  ">=",
	"Q":  ",",
	"R":  "()",
	"S":  "~",
	"T":  "^",
	"U":  "|",
	"V":  "&&",
	"W":  "||",
	"X":  "*=",
	"Y":  "+=",
	"Z":  "-=",
	"_0": "/=",
	"_1": "%=",
	"_2": ">>=",
	"_3": "<<=",
	"_4": "&=",
	"_5": "|=",
	"_6": "^=",
}

// specialCharCodes maps a single digit following "?" to the literal byte it
// encodes, for name fragments that need to embed a character illegal in a
// linker symbol.
var specialCharCodes = map[byte]byte{
	'0': ',',
	'1': '/',
	'2': '\\',
	'3': ':',
	'4': '.',
	'5': ' ',
	'6': '\x0B',
	'7': '\x0A',
	'8': '\'',
	'9': '-',
}
