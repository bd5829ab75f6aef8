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

import (
	"regexp"

	"github.com/google/cxxdemangle/cursor"
)

// decodeHexDigits reads a run of [A-P] characters as a big-endian base-16
// number with A=0 ... P=15.
func decodeHexDigits(s string) int {
	n := 0
	for _, r := range s {
		n = n*16 + int(r-'A')
	}
	return n
}

var (
	reSingleDigit = regexp.MustCompile(`^[0-9]`)
	reHexRun      = regexp.MustCompile(`^[A-P]+@`)
)

// parseEncodedNumber implements the encoded-number grammar: "@" for zero, a
// single digit for 1-10, or a run of [A-P] digits terminated by "@" for
// anything larger, each optionally negated by a leading "?".
//
// Nothing in the unimplemented data/function-encoding branches calls this
// yet (see parseEncoding), but the encoding itself is in scope: this is the
// number format a completed implementation of those branches would use.
func parseEncodedNumber(c *cursor.Cursor) (int, bool) {
	negative := c.Accept("?")

	var n int
	switch {
	case c.Accept("@"):
		n = 0
	default:
		if d, ok := c.MatchString(reSingleDigit); ok {
			n = int(d[0]-'0') + 1
		} else if hex, ok := c.MatchString(reHexRun); ok {
			n = decodeHexDigits(hex[:len(hex)-1])
		} else {
			return 0, false
		}
	}

	if negative {
		n = -n
	}
	return n, true
}

var reHexPair = regexp.MustCompile(`^[A-P]{2}`)
var reFarAsciiDigit = regexp.MustCompile(`^[A-P]`)

// parseEncodedChar implements the encoded-character grammar: "?$" followed
// by a two-nibble hex byte, "?" followed by one of the ten fixed sigils in
// specialCharCodes, "?" followed by a single hex nibble denoting a byte in
// the upper ASCII range (value+128), or a literal byte.
func parseEncodedChar(c *cursor.Cursor) (byte, bool) {
	if c.Accept("?$") {
		pair, ok := c.MatchString(reHexPair)
		if !ok {
			return 0, false
		}
		return byte(decodeHexDigits(pair)), true
	}
	if c.HasPrefix("?") && len(c.Remaining()) > 1 {
		if b, ok := specialCharCodes[c.Remaining()[1]]; ok {
			c.Advance(2)
			return b, true
		}
	}
	if c.Accept("?") {
		nibble, ok := c.MatchString(reFarAsciiDigit)
		if !ok {
			return 0, false
		}
		return byte(decodeHexDigits(nibble) + 128), true
	}
	ch, ok := c.Advance(1)
	if !ok {
		return 0, false
	}
	return ch[0], true
}
