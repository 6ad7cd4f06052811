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

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shape is the kind of delivery line found by the tokenizer.
type Shape int

const (
	ShapeStreet Shape = iota
	ShapePOBox
	ShapeRuralRoute
)

func (s Shape) String() string {
	switch s {
	case ShapePOBox:
		return "po_box"
	case ShapeRuralRoute:
		return "rural_route"
	}
	return "street"
}

// Tokenized is the tokenizer output for one line.
type Tokenized struct {
	Shape  Shape
	Tokens []string
	// Text is the cleaned line with any PO box or rural route header removed.
	Text string
}

// Tokenize cleans raw, detects a PO box or rural route header and splits
// the rest on whitespace.
func (s *Standardizer) Tokenize(raw string) Tokenized {
	text := clean(raw)
	shape := ShapeStreet
	if h, ok := s.lookup.MatchPOBoxHeader(text); ok {
		text = text[len(h):]
		shape = ShapePOBox
	} else if h, ok := s.lookup.MatchRuralRouteHeader(text); ok {
		text = text[len(h):]
		shape = ShapeRuralRoute
	}
	return Tokenized{Shape: shape, Tokens: strings.Fields(text), Text: text}
}

// clean reads at most MaxRemainderSize characters of raw, drops ASCII
// punctuation other than '#' and upper-cases what is left.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	n := 0
	for _, r := range raw {
		if n == MaxRemainderSize {
			break
		}
		n++
		if r != '#' && isASCIIPunct(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// splitOnHash splits text on whitespace and '#'.
func splitOnHash(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '#' || unicode.IsSpace(r)
	})
}
