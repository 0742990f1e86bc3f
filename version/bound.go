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

// Bound is a single contiguous interval of Versions, defined by an optional
// lower and optional upper endpoint. A nil lower means "from the beginning"
// (equivalent to the empty Version, inclusive); a nil upper means "with no
// end". A Bound with both nil is the universe: every Version.
type Bound struct {
	lower *LowerEndpoint
	upper *UpperEndpoint
}

// newBound builds a Bound from optionally-nil endpoints, and reports an
// error if the resulting interval is inconsistent or empty: the
// lower version must be less than the upper version, or, if equal, both
// endpoints must be inclusive (a single-point interval).
func newBound(lower *LowerEndpoint, upper *UpperEndpoint) (Bound, error) {
	b := Bound{lower: lower, upper: upper}
	if lower == nil || upper == nil {
		return b, nil
	}
	switch c := Compare(lower.version, upper.version); {
	case c < 0:
		return b, nil
	case c == 0 && lower.inclusive && upper.inclusive:
		return b, nil
	default:
		return Bound{}, invalidRangef(b.String(), "empty interval: lower %s, upper %s", lower.String(), upper.String())
	}
}

// isEmpty reports whether b describes an impossible (empty) interval - only
// possible as an intermediate result of set algebra, since newBound rejects
// it at construction.
func (b Bound) isEmpty() bool {
	if b.lower == nil || b.upper == nil {
		return false
	}
	c := Compare(b.lower.version, b.upper.version)
	if c > 0 {
		return true
	}
	if c == 0 && !(b.lower.inclusive && b.upper.inclusive) {
		return true
	}
	return false
}

// Contains reports whether v satisfies both endpoints of b.
func (b Bound) Contains(v Version) bool {
	return lowerSatisfies(b.lower, v) && upperSatisfies(b.upper, v)
}

// Intersects reports whether a and b overlap: their intersection is
// non-empty.
func (a Bound) Intersects(b Bound) bool {
	_, ok := a.Intersect(b)
	return ok
}

// Intersect returns the intersection of a and b, and whether it is
// non-empty. The intersection's lower endpoint is the greater (stricter) of
// the two lowers; its upper endpoint is the lesser (stricter) of the two
// uppers.
func (a Bound) Intersect(b Bound) (Bound, bool) {
	lower := maxLower(a.lower, b.lower)
	upper := minUpper(a.upper, b.upper)
	out := Bound{lower: lower, upper: upper}
	if out.isEmpty() {
		return Bound{}, false
	}
	return out, true
}

// touches reports whether a's upper endpoint meets b's lower endpoint: they
// are equal in version and at least one side is inclusive, so the union of
// a and b is itself contiguous even though they don't overlap.
func touches(a, b Bound) bool {
	if a.upper == nil || b.lower == nil {
		return false
	}
	if !Equal(a.upper.version, b.lower.version) {
		return false
	}
	return a.upper.inclusive || b.lower.inclusive
}

// UnionContiguous returns the union of a and b as either a single fused
// Bound, when the two overlap or meet, or the two Bounds unchanged
// (ascending by lower endpoint) otherwise.
func (a Bound) UnionContiguous(b Bound) []Bound {
	if compareBound(a, b) > 0 {
		a, b = b, a
	}
	if a.Intersects(b) || touches(a, b) {
		return []Bound{{
			lower: minLower(a.lower, b.lower),
			upper: maxUpper(a.upper, b.upper),
		}}
	}
	return []Bound{a, b}
}

// compareBound orders two Bounds by lower endpoint first, then by upper
// endpoint.
func compareBound(a, b Bound) int {
	if c := compareLower(a.lower, b.lower); c != 0 {
		return c
	}
	return compareUpper(a.upper, b.upper)
}

// String renders b in canonical form:
//   - "==v" when lower and upper share a version (a point interval);
//   - "v1..v2" when both endpoints are inclusive and the versions differ;
//   - "v1" (superset form) when lower is inclusive, upper exclusive, and
//     upper is exactly the successor of lower;
//   - otherwise the concatenation of the endpoints' own canonical strings.
func (b Bound) String() string {
	switch {
	case b.lower == nil && b.upper == nil:
		return ""
	case b.lower == nil:
		return b.upper.String()
	case b.upper == nil:
		return b.lower.String()
	case Equal(b.lower.version, b.upper.version):
		return "==" + b.lower.version.String()
	case b.lower.inclusive && b.upper.inclusive:
		return b.lower.version.String() + ".." + b.upper.version.String()
	case b.lower.inclusive && !b.upper.inclusive:
		if next, err := b.lower.version.Successor(); err == nil && Equal(next, b.upper.version) {
			return b.lower.version.String()
		}
		return b.lower.String() + b.upper.String()
	default:
		return b.lower.String() + b.upper.String()
	}
}
