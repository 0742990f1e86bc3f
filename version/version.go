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

import "strings"

// Version is an ordered sequence of zero or more Tokens, separated
// cosmetically by '.' or '-'. The empty Version (zero tokens) is the
// smallest possible Version, representing "unversioned".
type Version struct {
	raw    string
	tokens []Token
	seps   []byte // len(seps) == len(tokens)-1 when len(tokens) > 0
}

// Parse parses s as a Version. The empty string is not an error: it yields
// the empty Version. Parse fails with ErrInvalidVersion if s begins or ends
// with a separator, contains consecutive separators, uses a separator other
// than '.' or '-', or any token fails to parse.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{raw: s}, nil
	}

	var tokens []Token
	var seps []byte
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && isTokenByte(s[i]) {
			i++
		}
		if i == start {
			if start == 0 {
				return Version{}, invalidVersionf(s, "leading separator")
			}
			return Version{}, invalidVersionf(s, "consecutive separators")
		}
		tok, err := ParseToken(s[start:i])
		if err != nil {
			return Version{}, invalidVersionf(s, "bad token %#q: %v", s[start:i], err)
		}
		tokens = append(tokens, tok)

		if i == len(s) {
			break
		}
		sepStart := i
		for i < len(s) && !isTokenByte(s[i]) {
			i++
		}
		sep := s[sepStart:i]
		if i == len(s) {
			return Version{}, invalidVersionf(s, "trailing separator")
		}
		if len(sep) != 1 {
			return Version{}, invalidVersionf(s, "consecutive separators")
		}
		if sep[0] != '.' && sep[0] != '-' {
			return Version{}, invalidVersionf(s, "illegal separator %q", sep)
		}
		seps = append(seps, sep[0])
	}

	return Version{raw: s, tokens: tokens, seps: seps}, nil
}

func isTokenByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == '_':
		return true
	}
	return false
}

// Len returns the number of Tokens in v.
func (v Version) Len() int {
	return len(v.tokens)
}

// IsEmpty reports whether v is the empty ("unversioned") Version.
func (v Version) IsEmpty() bool {
	return len(v.tokens) == 0
}

// Trim returns a Version containing only the first n Tokens of v. If n
// exceeds v.Len(), Trim returns v unchanged. Used by collaborators to
// extract e.g. a major.minor prefix from a longer version.
func (v Version) Trim(n int) Version {
	if n >= len(v.tokens) {
		return v
	}
	if n <= 0 {
		return Version{}
	}
	tokens := v.tokens[:n]
	seps := v.seps[:n-1]
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(seps[i-1])
		}
		b.WriteString(t.String())
	}
	return Version{raw: b.String(), tokens: tokens, seps: seps}
}

// String recovers the original surface form of v, using the separators it
// was parsed with.
func (v Version) String() string {
	return v.raw
}

// Compare returns a negative number if a < b, zero if a == b, and a
// positive number if a > b. Ordering is lexicographic over the token list: a
// shorter Version whose tokens are a prefix of a longer one is strictly
// less (e.g. "3" < "3.0").
func Compare(a, b Version) int {
	n := len(a.tokens)
	if len(b.tokens) < n {
		n = len(b.tokens)
	}
	for i := 0; i < n; i++ {
		if c := CompareToken(a.tokens[i], b.tokens[i]); c != 0 {
			return c
		}
	}
	return len(a.tokens) - len(b.tokens)
}

// Equal reports whether a and b have equal token lists; separators are
// cosmetic and ignored.
func Equal(a, b Version) bool {
	return Compare(a, b) == 0
}

// Less reports whether a is strictly less than b.
func Less(a, b Version) bool {
	return Compare(a, b) < 0
}

// Successor returns a Version strictly greater than v, obtained by
// incrementing the final Token. Versions that extend v (such as "3.0" for
// "3") sort between v and its successor. It fails with ErrNoNext on the
// empty Version.
func (v Version) Successor() (Version, error) {
	if len(v.tokens) == 0 {
		return Version{}, ErrNoNext
	}
	tokens := make([]Token, len(v.tokens))
	copy(tokens, v.tokens)
	tokens[len(tokens)-1] = tokens[len(tokens)-1].Successor()

	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(v.seps[i-1])
		}
		b.WriteString(t.String())
	}
	return Version{raw: b.String(), tokens: tokens, seps: v.seps}, nil
}
