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

import "testing"

func TestLowerEndpointString(t *testing.T) {
	tests := []struct {
		e    LowerEndpoint
		want string
	}{
		{NewLowerEndpoint(mustVersionNoT("3"), true), "3+"},
		{NewLowerEndpoint(mustVersionNoT("3"), false), ">3"},
		{NewLowerEndpoint(Version{}, false), ">"},
		{NewLowerEndpoint(Version{}, true), ""},
	}
	for _, test := range tests {
		if got := test.e.String(); got != test.want {
			t.Errorf("LowerEndpoint.String() = %q; want %q", got, test.want)
		}
	}
}

func TestUpperEndpointString(t *testing.T) {
	tests := []struct {
		e    UpperEndpoint
		want string
	}{
		{NewUpperEndpoint(mustVersionNoT("5"), true), "<=5"},
		{NewUpperEndpoint(mustVersionNoT("5"), false), "<5"},
	}
	for _, test := range tests {
		if got := test.e.String(); got != test.want {
			t.Errorf("UpperEndpoint.String() = %q; want %q", got, test.want)
		}
	}
}

func TestCompareLowerOrdersByInclusivity(t *testing.T) {
	v := mustVersionNoT("3")
	incl := NewLowerEndpoint(v, true)
	excl := NewLowerEndpoint(v, false)
	// At the same version, inclusive admits more versions, so it is "less".
	if c := compareLower(&incl, &excl); c >= 0 {
		t.Errorf("compareLower(3+, >3) = %d; want negative", c)
	}
	emptyIncl := NewLowerEndpoint(Version{}, true)
	if c := compareLower(nil, &emptyIncl); c != 0 {
		t.Errorf("compareLower(nil, empty+) = %d; want 0 (absent == empty inclusive)", c)
	}
}

func TestCompareUpperUnboundedIsGreatest(t *testing.T) {
	v := mustVersionNoT("5")
	incl := NewUpperEndpoint(v, true)
	if c := compareUpper(nil, &incl); c <= 0 {
		t.Errorf("compareUpper(nil, <=5) = %d; want positive (unbounded is greatest)", c)
	}
	if c := compareUpper(&incl, nil); c >= 0 {
		t.Errorf("compareUpper(<=5, nil) = %d; want negative", c)
	}
}

func mustVersionNoT(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
