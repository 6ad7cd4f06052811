// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package standardizer

import "strings"

// unitDesignator is reported for units written with '#'.
const unitDesignator = "UNIT"

// Parse decomposes one raw delivery line. It never fails: anything it cannot
// place ends up in the remainder.
func (s *Standardizer) Parse(raw string) ParsedAddress {
	tok := s.Tokenize(raw)
	switch tok.Shape {
	case ShapePOBox:
		return parsePOBox(tok.Tokens)
	case ShapeRuralRoute:
		return parseRuralRoute(tok)
	}
	return s.parseStreet(tok.Tokens)
}

// parsePOBox takes the box from the second token. Lines with fewer than two
// tokens after the header produce an empty result.
func parsePOBox(tokens []string) ParsedAddress {
	var a ParsedAddress
	if len(tokens) < 2 {
		return a
	}
	a.POBox = element("PO BOX " + tokens[1])
	a.Remainder = remainder(tokens[2:])
	return a
}

func parseRuralRoute(tok Tokenized) ParsedAddress {
	var a ParsedAddress
	tokens := tok.Tokens
	if len(tokens) == 1 {
		// "RR 12#34"
		tokens = splitOnHash(tok.Text)
	}
	if len(tokens) < 2 {
		return a
	}

	route := "RURAL ROUTE " + tokens[0]
	next := 1
	switch tokens[next] {
	case "#", "BOX", "UNIT":
		next++
	}
	if next < len(tokens) {
		route += " BOX " + strings.TrimPrefix(tokens[next], "#")
		next++
	}
	a.RuralRoute = element(route)
	a.Remainder = remainder(tokens[next:])
	return a
}

func (s *Standardizer) parseStreet(tokens []string) ParsedAddress {
	var a ParsedAddress

	typePos, streetType, ok := s.findStreetType(tokens)
	if !ok {
		a.Remainder = remainder(tokens)
		return a
	}
	a.StreetType = element(streetType)

	// A unit written ahead of the street type is lifted out of the tokens so
	// it does not end up in the street name.
	for i := typePos - 1; i >= 0; i-- {
		unitType, number, inline, found := s.matchUnit(tokens[i])
		if !found {
			continue
		}
		a.UnitType = element(unitType)
		switch {
		case inline:
			a.UnitNumber = element(number)
			tokens = without(tokens, i, 1)
			typePos--
		case i+1 < typePos:
			a.UnitNumber = element(tokens[i+1])
			tokens = without(tokens, i, 2)
			typePos -= 2
		default:
			// designator directly before the street type: no number
			tokens = without(tokens, i, 1)
			typePos--
		}
		break
	}

	nameFrom := 0
	if IsNumeric(tokens[0]) {
		a.StreetNumber = element(tokens[0])
		nameFrom = 1
	}

	nameTo := typePos
	if typePos > 0 && s.lookup.IsDirectional(tokens[typePos-1]) {
		a.PreDirectional = element(tokens[typePos-1])
		nameTo--
	}
	if nameFrom < nameTo {
		a.StreetName = element(strings.Join(tokens[nameFrom:nameTo], " "))
	}
	if a.StreetName == "" && a.PreDirectional != "" {
		// "123 E Rd": the directional is the name
		a.StreetName, a.PreDirectional = a.PreDirectional, ""
	}

	rest := typePos + 1
	if rest < len(tokens) && s.lookup.IsDirectional(tokens[rest]) {
		a.PostDirectional = element(tokens[rest])
		rest++
	}

	if a.UnitType == "" {
		for i := typePos + 1; i < len(tokens); i++ {
			unitType, number, inline, found := s.matchUnit(tokens[i])
			if !found {
				continue
			}
			a.UnitType = element(unitType)
			rest = i + 1
			if inline {
				a.UnitNumber = element(number)
			} else if rest < len(tokens) {
				a.UnitNumber = element(tokens[rest])
				rest++
			}
			break
		}
	}

	a.Remainder = remainder(tokens[rest:])

	// Numbered routes such as "STATE HWY 715" keep the number in the name.
	if a.PostDirectional == "" && a.UnitType == "" && a.UnitNumber == "" &&
		a.Remainder != "" && isDigitsAndSpaces(a.Remainder) {
		a.StreetName = element(joinNonEmpty(a.StreetName, a.StreetType, a.Remainder))
		a.StreetType = ""
		a.Remainder = ""
	}

	return a
}

// findStreetType scans right to left. The first two tokens are never taken
// as the street type.
func (s *Standardizer) findStreetType(tokens []string) (int, string, bool) {
	for i := len(tokens) - 1; i > 1; i-- {
		if e, ok := s.lookup.StreetType(tokens[i]); ok {
			return i, e.Canonical, true
		}
	}
	return 0, "", false
}

// matchUnit recognizes a bare "#", an inline "#12" or a unit designator.
// inline is set when the token carried its own number.
func (s *Standardizer) matchUnit(token string) (unitType, number string, inline, ok bool) {
	switch {
	case token == "#":
		return unitDesignator, "", false, true
	case strings.HasPrefix(token, "#"):
		return unitDesignator, token[1:], true, true
	}
	if e, found := s.lookup.UnitType(token); found {
		return e.Canonical, "", false, true
	}
	return "", "", false, false
}

// without returns a copy of tokens with n tokens removed starting at i.
func without(tokens []string, i, n int) []string {
	out := make([]string, 0, len(tokens)-n)
	out = append(out, tokens[:i]...)
	return append(out, tokens[i+n:]...)
}

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isDigitsAndSpaces(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
