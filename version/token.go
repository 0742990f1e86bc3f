// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import "math/big"

// Token is a single atom of a Version: a non-empty run of
// [A-Za-z0-9_] such as "07b" or "rc02". A Token decomposes into an ordered
// list of subtokens, each purely numeric or purely non-numeric, alternating
// along the string starting with whichever kind appears first.
type Token struct {
	raw       string
	subtokens []subtoken
}

// subtoken is one maximal numeric or non-numeric run within a Token.
// numeric subtokens carry both their integer value and their original
// text so that Successor can preserve zero-padding. The value is
// unbounded (big.Int rather than int64) because a numeric subtoken is an
// arbitrary-length digit run with no width limit.
type subtoken struct {
	text    string
	isNum   bool
	numeric *big.Int
}

// ParseToken parses s as a Token. It fails with ErrInvalidToken if s is
// empty or contains a character outside [A-Za-z0-9_].
func ParseToken(s string) (Token, error) {
	if s == "" {
		return Token{}, invalidTokenf(s, "empty token")
	}
	for _, r := range s {
		if !isTokenRune(r) {
			return Token{}, invalidTokenf(s, "illegal character %q", r)
		}
	}
	return Token{raw: s, subtokens: decompose(s)}, nil
}

func isTokenRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '_':
		return true
	}
	return false
}

// decompose splits s into alternating numeric/non-numeric subtoken runs in
// a single scan.
func decompose(s string) []subtoken {
	var subs []subtoken
	i := 0
	for i < len(s) {
		start := i
		numeric := isDigitByte(s[i])
		for i < len(s) && isDigitByte(s[i]) == numeric {
			i++
		}
		text := s[start:i]
		sub := subtoken{text: text, isNum: numeric}
		if numeric {
			// text is all-digit by construction, so SetString never fails.
			sub.numeric, _ = new(big.Int).SetString(text, 10)
		}
		subs = append(subs, sub)
	}
	return subs
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// String returns the original token text, round-tripping the input to
// ParseToken.
func (t Token) String() string {
	return t.raw
}

// CompareToken returns a negative number if a < b, zero if a == b, and a
// positive number if a > b, per the subtoken ordering rule:
//   - a non-numeric subtoken is always less than a numeric subtoken;
//   - two non-numeric subtokens compare lexicographically with '_' ranked
//     below 'A'-'Z' and 'a'-'z' (not plain ASCII byte order, where '_'
//     falls between them);
//   - two numeric subtokens compare by integer value, ignoring padding.
func CompareToken(a, b Token) int {
	return compareSubtokens(a.subtokens, b.subtokens)
}

func compareSubtokens(a, b []subtoken) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareSubtoken(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

func compareSubtoken(a, b subtoken) int {
	if a.isNum != b.isNum {
		if a.isNum {
			return 1
		}
		return -1
	}
	if a.isNum {
		return a.numeric.Cmp(b.numeric)
	}
	return compareBytes(a.text, b.text)
}

// compareBytes compares non-numeric subtoken text byte-by-byte under the
// rank '_' < 'A'-'Z' < 'a'-'z'. This is not plain ASCII order: '_' is 0x5F,
// above 'A'-'Z' (0x41-0x5A), so it is remapped below them via byteRank.
func compareBytes(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if byteRank(a[i]) < byteRank(b[i]) {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// byteRank maps a token byte to its sort rank: '_' sorts below every
// letter, and letters otherwise keep their ASCII order.
func byteRank(b byte) int {
	if b == '_' {
		return -1
	}
	return int(b)
}

// EqualToken reports whether a and b are equal: their subtoken lists are
// element-wise equal, with numeric subtokens compared by value so that
// "01" == "1".
func EqualToken(a, b Token) bool {
	return CompareToken(a, b) == 0
}

// Successor returns a Token strictly greater than t: if the last
// subtoken is numeric, it is incremented, preserving the original text
// width via zero-padding ("009" -> "010"); otherwise '_' is appended to the
// trailing non-numeric subtoken.
func (t Token) Successor() Token {
	subs := make([]subtoken, len(t.subtokens))
	copy(subs, t.subtokens)
	last := subs[len(subs)-1]
	if last.isNum {
		last.numeric = new(big.Int).Add(last.numeric, big.NewInt(1))
		text := last.numeric.String()
		for len(text) < len(last.text) {
			text = "0" + text
		}
		last.text = text
	} else {
		last.text += "_"
	}
	subs[len(subs)-1] = last

	var b []byte
	for _, s := range subs {
		b = append(b, s.text...)
	}
	return Token{raw: string(b), subtokens: subs}
}
