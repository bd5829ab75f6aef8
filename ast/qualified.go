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

import "sort"

// The three CV qualifiers the Itanium ABI mangles.
const (
	QualConst    = "const"
	QualVolatile = "volatile"
	QualRestrict = "restrict"
)

// StringSet is a small unordered set of strings with a stable iteration
// order (see Sorted), used for both CVQual's qualifier set and ABI's tag
// set. The ABI itself does not fix an order for these (§9 of the spec this
// module implements); Sorted lists the three CV qualifiers in a fixed
// order and any other member alphabetically, which makes the renderer
// deterministic. Equal compares by membership only.
type StringSet map[string]bool

// NewStringSet builds a StringSet from the given members, discarding
// duplicates.
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s[m] = true
	}
	return s
}

// Has reports whether m is a member of s.
func (s StringSet) Has(m string) bool { return s[m] }

// cvQualOrder fixes the rendering order for the three known CV qualifiers:
// "const volatile restrict", per this module's choice of stable order where
// the ABI leaves qualifier order unspecified.
var cvQualOrder = []string{QualConst, QualVolatile, QualRestrict}

// Sorted returns the set's members in a stable order: the three CV
// qualifiers first, in cvQualOrder, followed by any other member (as used
// by ABI's open-ended tag set) alphabetically.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	seen := make(map[string]bool, len(s))
	for _, m := range cvQualOrder {
		if s[m] {
			out = append(out, m)
			seen[m] = true
		}
	}
	var rest []string
	for m := range s {
		if !seen[m] {
			rest = append(rest, m)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Equal reports whether s and o have exactly the same members.
func (s StringSet) Equal(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for m := range s {
		if !o[m] {
			return false
		}
	}
	return true
}

// CVQual wraps a type with a non-empty subset of {const, volatile,
// restrict}.
type CVQual struct {
	Value Node
	Qual  StringSet
}

func (CVQual) isNode() {}

// ABI wraps a name with a non-empty set of opaque ABI tag strings, as
// produced by one or more "B<source-name>" suffixes.
type ABI struct {
	Value Node
	Qual  StringSet
}

func (ABI) isNode() {}
