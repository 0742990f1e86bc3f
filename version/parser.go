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

// rangeParser recognizes the version-range grammar:
//
//	version        = [ token { sep token } ]
//	exact_range    = "==" version
//	lower_only     = ( ( ">" | ">=" ) version ) | ( version "+" )
//	upper_only     = ( "<" | "<=" ) version
//	closed_range   = lower_only upper_only
//	inclusive_pair = version ".." version
//	range_atom     = version | exact_range | lower_only | upper_only
//	               | closed_range | inclusive_pair
//	expression     = [ range_atom { "|" range_atom } ]
//
// It accumulates sub-results on a small value stack: each reduce* method
// pops its operands and pushes a Version, a LowerEndpoint, an UpperEndpoint,
// or a fully-formed Bound, and reduceAtom drains the stack into the
// completed-bounds list once a "|" or the end of input is reached.
//
// A rangeParser is single-use and holds no state beyond one call to parse;
// ParseRange allocates a fresh one per call, so concurrent calls never
// share a parser.
type rangeParser struct {
	lex    lexer
	stack  []any
	bounds []Bound
}

func newRangeParser(s string) *rangeParser {
	return &rangeParser{lex: lexer{str: s}}
}

// parse consumes the parser's entire input and returns the Bounds of each
// "|"-separated range_atom. The caller is expected to have already handled
// the empty string specially (it denotes the universe, not a zero-length
// list of atoms - see ParseRange in range.go).
func (p *rangeParser) parse() ([]Bound, error) {
	for {
		if err := p.parseAtom(); err != nil {
			return nil, err
		}
		p.lex.skipSpace()
		if p.lex.atEOF() {
			break
		}
		tok, n := p.lex.peekOp()
		if tok != rtPipe {
			return nil, invalidRangef(p.lex.str, "unexpected input %#q", p.lex.str[p.lex.pos:])
		}
		p.lex.advance(n)
	}
	return p.bounds, nil
}

func (p *rangeParser) parseAtom() error {
	tok, n := p.lex.peekOp()
	switch tok {
	case rtEqEq:
		p.lex.advance(n)
		v, err := p.parseVersion()
		if err != nil {
			return err
		}
		p.pushVersion(v)
		p.reduceExact()
		return p.reduceAtom()

	case rtGE, rtGT:
		p.lex.advance(n)
		v, err := p.parseVersion()
		if err != nil {
			return err
		}
		p.pushVersion(v)
		p.reduceLower(tok == rtGT)
		return p.maybeUpperThenAtom()

	case rtLE, rtLT:
		p.lex.advance(n)
		v, err := p.parseVersion()
		if err != nil {
			return err
		}
		p.pushVersion(v)
		p.reduceUpper(tok == rtLE)
		return p.reduceAtom()

	default:
		v, err := p.parseVersion()
		if err != nil {
			return err
		}
		p.pushVersion(v)

		tok2, n2 := p.lex.peekOp()
		switch tok2 {
		case rtPlus:
			p.lex.advance(n2)
			p.reduceLower(false)
			return p.maybeUpperThenAtom()
		case rtDotDot:
			p.lex.advance(n2)
			v2, err := p.parseVersion()
			if err != nil {
				return err
			}
			p.pushVersion(v2)
			if err := p.reduceInclusivePair(); err != nil {
				return err
			}
			return p.reduceAtom()
		default:
			return p.reduceAtom()
		}
	}
}

// maybeUpperThenAtom looks for a trailing upper_only following a lower_only
// that was just reduced onto the stack, turning "v1+<v2"/">=v1<v2" etc.
// into a closed_range; otherwise it finishes the atom as a lower_only.
func (p *rangeParser) maybeUpperThenAtom() error {
	p.lex.skipSpace()
	tok, n := p.lex.peekOp()
	if tok == rtLE || tok == rtLT {
		p.lex.advance(n)
		v, err := p.parseVersion()
		if err != nil {
			return err
		}
		p.pushVersion(v)
		p.reduceUpper(tok == rtLE)
	}
	return p.reduceAtom()
}

func (p *rangeParser) parseVersion() (Version, error) {
	text := p.lex.scanVersion()
	v, err := Parse(text)
	if err != nil {
		return Version{}, invalidRangef(p.lex.str, "bad version %#q: %v", text, err)
	}
	return v, nil
}

func (p *rangeParser) pushVersion(v Version) {
	p.stack = append(p.stack, v)
}

func (p *rangeParser) popVersion() Version {
	v := p.stack[len(p.stack)-1].(Version)
	p.stack = p.stack[:len(p.stack)-1]
	return v
}

func (p *rangeParser) reduceExact() {
	v := p.popVersion()
	lower := NewLowerEndpoint(v, true)
	upper := NewUpperEndpoint(v, true)
	p.stack = append(p.stack, Bound{lower: &lower, upper: &upper})
}

func (p *rangeParser) reduceLower(exclusive bool) {
	v := p.popVersion()
	p.stack = append(p.stack, NewLowerEndpoint(v, !exclusive))
}

func (p *rangeParser) reduceUpper(inclusive bool) {
	v := p.popVersion()
	p.stack = append(p.stack, NewUpperEndpoint(v, inclusive))
}

func (p *rangeParser) reduceInclusivePair() error {
	v2 := p.popVersion()
	v1 := p.popVersion()
	lower := NewLowerEndpoint(v1, true)
	upper := NewUpperEndpoint(v2, true)
	b, err := newBound(&lower, &upper)
	if err != nil {
		return err
	}
	p.stack = append(p.stack, b)
	return nil
}

// reduceAtom pops the stack built up for the current range_atom and appends
// the completed Bound to p.bounds.
func (p *rangeParser) reduceAtom() error {
	defer func() { p.stack = nil }()

	if len(p.stack) == 2 {
		lower := p.stack[0].(LowerEndpoint)
		upper := p.stack[1].(UpperEndpoint)
		b, err := newBound(&lower, &upper)
		if err != nil {
			return err
		}
		p.bounds = append(p.bounds, b)
		return nil
	}

	switch v := p.stack[0].(type) {
	case Version:
		if v.IsEmpty() {
			return invalidRangef(p.lex.str, "empty version not valid here")
		}
		next, err := v.Successor()
		if err != nil {
			return invalidRangef(p.lex.str, "%v", err)
		}
		lower := NewLowerEndpoint(v, true)
		upper := NewUpperEndpoint(next, false)
		b, err := newBound(&lower, &upper)
		if err != nil {
			return err
		}
		p.bounds = append(p.bounds, b)
	case LowerEndpoint:
		b, err := newBound(&v, nil)
		if err != nil {
			return err
		}
		p.bounds = append(p.bounds, b)
	case UpperEndpoint:
		b, err := newBound(nil, &v)
		if err != nil {
			return err
		}
		p.bounds = append(p.bounds, b)
	case Bound:
		p.bounds = append(p.bounds, v)
	}
	return nil
}
