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

/*
Package version implements the version algebra at the core of a package
manager: ordered version tokens, versions built from them, and version
ranges built from intervals of versions.

A Version is an ordered sequence of zero or more Tokens separated by '.' or
'-'. Tokens are arbitrary runs of [A-Za-z0-9_] and compare by splitting into
alternating numeric and non-numeric subtokens, so "alpha" < "alpha3" <
"beta" < "1". The empty Version sorts below everything and represents
"unversioned".

A VersionRange is a normalized union of disjoint Bounds, each an optional
lower and optional upper endpoint. Ranges are built by parsing a compact
textual grammar:

	"3"          superset of 3, 3.0, 3.1, ... but not 2.99 or 4
	"==3"        exactly 3, nothing else
	"3+", ">=3"  3 or anything greater
	">3"         anything strictly greater than 3
	"<5", "<=5"  anything below 5, exclusive or inclusive
	"1..5"       1 through 5 inclusive
	"1+<5"       1 inclusive through 5 exclusive
	"3|5+"       3's superset, or 5 and anything greater

Ranges support the usual set operations - union, intersection, subtraction,
complement - and containment tests against both single versions and other
ranges. All operations are pure: values are immutable once constructed, and
nothing in this package performs I/O or blocks.
*/
package version
