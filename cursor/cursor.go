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

// Package cursor implements the positioned, non-consuming view over a raw
// mangled symbol that both the itanium and msvc parsers advance across,
// plus the substitution table that a single Itanium parse accumulates.
package cursor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/cxxdemangle/ast"
)

// Cursor is a position within raw plus a per-parse substitution table. A
// Cursor is never shared across parses (each call to itanium.Demangle or
// msvc.Demangle constructs its own).
type Cursor struct {
	raw    string
	pos    int
	substs []ast.Node
}

// New returns a Cursor positioned at the start of raw.
func New(raw string) *Cursor {
	return &Cursor{raw: raw}
}

// AtEnd reports whether the cursor has consumed the whole input.
func (c *Cursor) AtEnd() bool {
	return c.pos == len(c.raw)
}

// Accept advances past literal and returns true if the bytes at the
// current position equal literal; otherwise it leaves the position
// unchanged and returns false.
func (c *Cursor) Accept(literal string) bool {
	if strings.HasPrefix(c.raw[c.pos:], literal) {
		c.pos += len(literal)
		return true
	}
	return false
}

// Advance consumes exactly n bytes and returns them. If fewer than n bytes
// remain, it returns ("", false) and does not advance.
func (c *Cursor) Advance(n int) (string, bool) {
	if c.pos+n > len(c.raw) {
		return "", false
	}
	result := c.raw[c.pos : c.pos+n]
	c.pos += n
	return result, true
}

// AdvanceUntil returns the bytes from the current position up to (but not
// including) the first occurrence of delim, then advances past delim. If
// delim does not occur, it returns ("", false) and does not advance.
func (c *Cursor) AdvanceUntil(delim string) (string, bool) {
	idx := strings.Index(c.raw[c.pos:], delim)
	if idx == -1 {
		return "", false
	}
	result := c.raw[c.pos : c.pos+idx]
	c.pos += idx + len(delim)
	return result, true
}

// Match anchors pattern at the current position. On a match it advances to
// the end of the match and returns the named capture groups that
// participated in the match (an empty but present capture, e.g. the empty
// "" of "[rVK]*", is included; a group that did not participate at all is
// not). On no match it returns (nil, false) and does not advance.
func (c *Cursor) Match(pattern *regexp.Regexp) (map[string]string, bool) {
	loc := pattern.FindStringSubmatchIndex(c.raw[c.pos:])
	if loc == nil || loc[0] != 0 {
		// Matching anchors at the cursor position, the same way Python's
		// re.match (as opposed to re.search) does; a match starting later
		// in the remaining input does not count.
		return nil, false
	}
	names := pattern.SubexpNames()
	groups := make(map[string]string, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start == -1 {
			continue
		}
		groups[name] = c.raw[c.pos+start : c.pos+end]
	}
	c.pos += loc[1]
	return groups, true
}

// MatchString anchors pattern at the current position and, on success,
// advances past the full match and returns it. It is Match's sibling for
// productions with no named captures to extract, such as a bare "[rVK]*"
// qualifier run.
func (c *Cursor) MatchString(pattern *regexp.Regexp) (string, bool) {
	loc := pattern.FindStringIndex(c.raw[c.pos:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	result := c.raw[c.pos : c.pos+loc[1]]
	c.pos += loc[1]
	return result, true
}

// HasPrefix reports whether the remaining input starts with s, without
// consuming it. Go's regexp package has no zero-width lookahead, so
// productions that need to peek ahead without advancing (the mangled-name
// alternative of <expr-primary>) use this instead of a lookahead pattern.
func (c *Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.raw[c.pos:], s)
}

// Remaining returns the as-yet-unconsumed input, without advancing.
func (c *Cursor) Remaining() string {
	return c.raw[c.pos:]
}

// AddSubst appends node to the substitution table, unless a structurally
// equal node is already present.
func (c *Cursor) AddSubst(node ast.Node) {
	for _, existing := range c.substs {
		if ast.Equal(existing, node) {
			return
		}
	}
	c.substs = append(c.substs, node)
}

// ResolveSubst returns the node at index id, or (nil, false) if id is out
// of range.
func (c *Cursor) ResolveSubst(id int) (ast.Node, bool) {
	if id < 0 || id >= len(c.substs) {
		return nil, false
	}
	return c.substs[id], true
}

// String renders the cursor's consumed/remaining split, for debugging.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%s→%s, %d)", c.raw[:c.pos], c.raw[c.pos:], c.pos)
}
