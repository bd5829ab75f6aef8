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

// Package msvc implements the completed portion of a parser for Microsoft's
// C++ name mangling scheme: the mangled-name prefix, the reversed
// "@"-terminated <name> fragment list, constructor/destructor/operator
// special names, and the encoded-number/encoded-character formats those
// fragments are built from.
//
// Data encodings, function encodings, templated names, numbered
// namespaces, and substitution back-references are recognized
// syntactically but not decoded: Demangle stops at the first one it meets
// and returns what it has (the name, for a data/function encoding it
// otherwise wouldn't have touched) or nil (for a name fragment it can't
// build at all), matching the reference parser's own unfinished branches
// rather than completing them.
package msvc

import (
	"regexp"

	"github.com/google/cxxdemangle/ast"
	"github.com/google/cxxdemangle/cursor"
)

// Demangle parses raw as an MSVC-mangled symbol and returns its AST. It
// returns (nil, nil) if raw is not a recognized mangled name, or if the
// <name> production runs into an unimplemented fragment kind (a templated
// name, a numbered namespace, or a substitution reference). It never
// returns a non-nil error: MSVC has no "recognized but rejected" construct
// the way itanium.ErrUnsupported does, only "not yet implemented".
func Demangle(raw []byte) (ast.Node, error) {
	c := cursor.New(string(raw))
	c.Accept("@")
	if !c.Accept("?") {
		return nil, nil
	}
	name, ok := parseEncoding(c)
	if !ok {
		return nil, nil
	}
	return name, nil
}

var (
	reDataEncoding     = regexp.MustCompile(`^\d`)
	reFunctionEncoding = regexp.MustCompile(`^[A-Z]`)
)

func parseEncoding(c *cursor.Cursor) (ast.Node, bool) {
	name, ok := parseName(c)
	if !ok {
		return nil, false
	}
	if c.AtEnd() {
		return name, true
	}
	// A data or function encoding follows. Decoding it is out of scope;
	// consume its one discriminator byte and stop there, returning the
	// name alone rather than the full declaration.
	if _, ok := c.MatchString(reDataEncoding); ok {
		return name, true
	}
	if _, ok := c.MatchString(reFunctionEncoding); ok {
		return name, true
	}
	return nil, false
}

var reNameFragment = regexp.MustCompile(`^[a-zA-Z0-9_]+@`)

// parseBasicNameFragment parses the first (innermost) fragment of a <name>,
// which may be a plain identifier or a special name, but not a numbered
// namespace or substitution reference (those can only qualify an
// already-started name).
func parseBasicNameFragment(c *cursor.Cursor) (ast.Node, bool) {
	if frag, ok := c.MatchString(reNameFragment); ok {
		return ast.Name{Value: frag[:len(frag)-1]}, true
	}
	if c.HasPrefix("?$") {
		return nil, false // templated names are not implemented
	}
	if c.Accept("?") {
		return parseSpecialName(c)
	}
	return nil, false
}

var (
	reNumberedNamespace = regexp.MustCompile(`^\?[A-P]`)
	reSubstitutionDigit = regexp.MustCompile(`^\d`)
)

// parseNameFragment parses a later fragment of a <name>.
func parseNameFragment(c *cursor.Cursor) (ast.Node, bool) {
	if frag, ok := c.MatchString(reNameFragment); ok {
		return ast.Name{Value: frag[:len(frag)-1]}, true
	}
	if c.HasPrefix("?$") {
		return nil, false // templated names are not implemented
	}
	if _, ok := c.MatchString(reNumberedNamespace); ok {
		return nil, false // numbered namespaces are not implemented
	}
	if _, ok := c.MatchString(reSubstitutionDigit); ok {
		return nil, false // substitution references are not implemented
	}
	return nil, false
}

func parseSpecialName(c *cursor.Cursor) (ast.Node, bool) {
	if c.Accept("0") {
		return ast.Ctor{Variant: ast.CtorComplete}, true
	}
	if c.Accept("1") {
		return ast.Dtor{Variant: ast.DtorComplete}, true
	}
	for _, code := range operatorCodes {
		if c.Accept(code) {
			return ast.Oper{Symbol: operators[code]}, true
		}
	}
	return nil, false
}

// parseName implements <name>: fragments accumulate in encounter order
// (innermost first, since MSVC mangles outward) and are reversed once at
// the end, never eagerly.
func parseName(c *cursor.Cursor) (ast.Node, bool) {
	first, ok := parseBasicNameFragment(c)
	if !ok {
		return nil, false
	}
	nodes := []ast.Node{first}

	for !c.Accept("@") {
		next, ok := parseNameFragment(c)
		if !ok {
			return nil, false
		}
		nodes = append(nodes, next)
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	if len(nodes) > 1 {
		return ast.QualName{Value: nodes}, true
	}
	return nodes[0], true
}
