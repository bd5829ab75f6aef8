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
	"testing"

	"github.com/google/cxxdemangle/cursor"
)

func TestDecodeHexDigits(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int
	}{
		{"A", 0},
		{"P", 15},
		{"AB", 1},
		{"BC", 18},
	} {
		if got := decodeHexDigits(test.in); got != test.want {
			t.Errorf("decodeHexDigits(%q) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestParseEncodedNumber(t *testing.T) {
	for _, test := range []struct {
		in       string
		want     int
		wantOK   bool
		wantRest string
	}{
		{"@", 0, true, ""},
		{"5", 6, true, ""},         // digits count from 1: '5' -> 5+1
		{"0", 1, true, ""},
		{"BC@", 18, true, ""},      // hex run: B=1,C=2 -> 1*16+2
		{"?BC@", -18, true, ""},
		{"", 0, false, ""},
		{"X", 0, false, "X"},
	} {
		c := cursor.New(test.in)
		got, ok := parseEncodedNumber(c)
		if ok != test.wantOK {
			t.Errorf("parseEncodedNumber(%q) ok = %v, want %v", test.in, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if got != test.want {
			t.Errorf("parseEncodedNumber(%q) = %d, want %d", test.in, got, test.want)
		}
		if rest := c.Remaining(); rest != test.wantRest {
			t.Errorf("parseEncodedNumber(%q) left cursor at %q, want %q", test.in, rest, test.wantRest)
		}
	}
}

func TestParseEncodedChar(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
		want byte
	}{
		{"hex pair", "?$BC", 18},
		{"special code", "?5", ' '},
		{"far ascii nibble", "?C", 130},
		{"literal byte", "x", 'x'},
	} {
		c := cursor.New(test.in)
		got, ok := parseEncodedChar(c)
		if !ok {
			t.Fatalf("%s: parseEncodedChar(%q) failed, want ok", test.name, test.in)
		}
		if got != test.want {
			t.Errorf("%s: parseEncodedChar(%q) = %d, want %d", test.name, test.in, got, test.want)
		}
	}
}

func TestParseEncodedCharFailureCases(t *testing.T) {
	for _, in := range []string{"", "?$X"} {
		c := cursor.New(in)
		if _, ok := parseEncodedChar(c); ok {
			t.Errorf("parseEncodedChar(%q): want failure, got success", in)
		}
	}
}
