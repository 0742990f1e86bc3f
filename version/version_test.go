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

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		str string
		ok  bool
	}{
		{"", true},
		{"3", true},
		{"1.2.3", true},
		{"1-alpha.2", true},
		{"1..2", false},
		{".1", false},
		{"1.", false},
		{"1,2", false},
		{"1.#", false},
	}
	for _, test := range tests {
		_, err := Parse(test.str)
		if (err == nil) != test.ok {
			t.Errorf("Parse(%q) error = %v; want ok=%v", test.str, err, test.ok)
		}
		if err != nil && !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("Parse(%q) error = %v; want wrapping ErrInvalidVersion", test.str, err)
		}
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	for _, str := range []string{"", "3", "1.2.3", "1-alpha.2", "1.009"} {
		v, err := Parse(str)
		if err != nil {
			t.Fatalf("Parse(%q): %v", str, err)
		}
		if got := v.String(); got != str {
			t.Errorf("Parse(%q).String() = %q; want %q", str, got, str)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"3", "3.0", -1}, // a prefix is strictly less
		{"", "0", -1},
		{"beta", "1", -1},
		{"1.2.3", "1.2.3", 0},
		{"1.2", "1.2.0", -1},
	}
	for _, test := range tests {
		a, err := Parse(test.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.a, err)
		}
		b, err := Parse(test.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.b, err)
		}
		if got := sign(Compare(a, b)); got != test.want {
			t.Errorf("Compare(%q, %q) = %d; want %d", test.a, test.b, got, test.want)
		}
		if got := sign(Compare(b, a)); got != -test.want {
			t.Errorf("Compare(%q, %q) = %d; want %d", test.b, test.a, got, -test.want)
		}
	}
}

func TestVersionCompareTransitive(t *testing.T) {
	strs := []string{"", "1", "1.0", "1.1", "1.9", "1.10", "2", "2.0-alpha", "2.0-beta"}
	var versions []Version
	for _, s := range strs {
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		versions = append(versions, v)
	}
	for i := 0; i < len(versions); i++ {
		for j := i + 1; j < len(versions); j++ {
			if !Less(versions[i], versions[j]) {
				t.Errorf("Less(%q, %q) = false; want true (list is ascending)", strs[i], strs[j])
			}
		}
	}
}

func TestVersionEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0", "1.0", true},
		{"1.01", "1.1", true}, // numeric subtokens compare by value, ignoring padding
		{"1", "1", true},
		{"", "", true},
		{"1.0", "1.1", false},
	}
	for _, test := range tests {
		a, err := Parse(test.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.a, err)
		}
		b, err := Parse(test.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.b, err)
		}
		if got := Equal(a, b); got != test.want {
			t.Errorf("Equal(%q, %q) = %v; want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestVersionSuccessor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1", "2"},
		{"1.009", "1.010"},
		{"1.2.3", "1.2.4"},
		{"1-rc", "1-rc_"},
	}
	for _, test := range tests {
		v, err := Parse(test.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.in, err)
		}
		next, err := v.Successor()
		if err != nil {
			t.Fatalf("Parse(%q).Successor(): %v", test.in, err)
		}
		if got := next.String(); got != test.want {
			t.Errorf("Parse(%q).Successor().String() = %q; want %q", test.in, got, test.want)
		}
		if !Less(v, next) {
			t.Errorf("Successor of %q (%q) does not compare greater", test.in, next.String())
		}
	}

	if _, err := (Version{}).Successor(); !errors.Is(err, ErrNoNext) {
		t.Errorf("empty Version.Successor() error = %v; want ErrNoNext", err)
	}
}

func TestVersionTrim(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"1.2.3", 2, "1.2"},
		{"1.2.3", 0, ""},
		{"1.2.3", 5, "1.2.3"},
		{"1.2.3", -1, ""},
	}
	for _, test := range tests {
		v, err := Parse(test.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", test.in, err)
		}
		if got := v.Trim(test.n).String(); got != test.want {
			t.Errorf("Parse(%q).Trim(%d).String() = %q; want %q", test.in, test.n, got, test.want)
		}
	}
}
