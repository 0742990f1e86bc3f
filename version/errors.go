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
	"fmt"
)

// Sentinel errors identifying the kind of failure. Use errors.Is against
// these to distinguish failure kinds. The parse errors (ErrInvalidToken,
// ErrInvalidVersion, ErrInvalidRange) also carry the offending input via
// %w-wrapped fmt.Errorf with a %#q-quoted value; ErrNoNext is returned as is.
var (
	// ErrInvalidToken is returned when a token contains a character
	// outside [A-Za-z0-9_], or is empty.
	ErrInvalidToken = errors.New("invalid version token")

	// ErrInvalidVersion is returned for a leading/trailing separator,
	// consecutive separators, an illegal separator character, or a
	// token that fails to parse.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidRange is returned for a range expression that does not
	// match the grammar, or that reduces to an empty/inconsistent Bound.
	ErrInvalidRange = errors.New("invalid version range")

	// ErrNoNext is returned by Version.Successor on the empty Version.
	ErrNoNext = errors.New("version has no successor")
)

func invalidTokenf(input string, format string, args ...any) error {
	return fmt.Errorf("%w: %#q: %s", ErrInvalidToken, input, fmt.Sprintf(format, args...))
}

func invalidVersionf(input string, format string, args ...any) error {
	return fmt.Errorf("%w: %#q: %s", ErrInvalidVersion, input, fmt.Sprintf(format, args...))
}

func invalidRangef(input string, format string, args ...any) error {
	return fmt.Errorf("%w: %#q: %s", ErrInvalidRange, input, fmt.Sprintf(format, args...))
}
