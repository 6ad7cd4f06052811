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

package batch

import (
	"gonum.org/v1/gonum/stat"

	"github.com/TFMV/DeliveryLine/standardizer"
)

// Summary describes what a run found.
type Summary struct {
	Lines         int     `json:"lines"`
	Street        int     `json:"street"`
	POBox         int     `json:"po_box"`
	RuralRoute    int     `json:"rural_route"`
	Unrecognized  int     `json:"unrecognized"`
	WithUnit      int     `json:"with_unit"`
	WithRemainder int     `json:"with_remainder"`
	MeanTokens    float64 `json:"mean_tokens"`
	StdDevTokens  float64 `json:"stddev_tokens"`
}

type summaryBuilder struct {
	s      Summary
	tokens []float64
}

func (b *summaryBuilder) add(r Result) {
	b.s.Lines++
	b.tokens = append(b.tokens, float64(r.Tokens))

	p := r.Parsed
	switch {
	case p.POBox != "":
		b.s.POBox++
	case p.RuralRoute != "":
		b.s.RuralRoute++
	case p.StreetName != "" || p.StreetType != "":
		b.s.Street++
	default:
		b.s.Unrecognized++
	}
	if p.UnitType != "" {
		b.s.WithUnit++
	}
	if p.Remainder != "" {
		b.s.WithRemainder++
	}
}

func (b *summaryBuilder) build() Summary {
	s := b.s
	switch len(b.tokens) {
	case 0:
	case 1:
		s.MeanTokens = b.tokens[0]
	default:
		s.MeanTokens, s.StdDevTokens = stat.MeanStdDev(b.tokens, nil)
	}
	return s
}

// Summarize builds a Summary for results that were parsed elsewhere.
func Summarize(results []Result) Summary {
	var b summaryBuilder
	for _, r := range results {
		b.add(r)
	}
	return b.build()
}

// ParsedColumns are the result columns holding the parsed elements, in
// ParsedAddress field order.
func ParsedColumns() []string {
	fields := standardizer.ParsedAddress{}.Fields()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}
	return cols
}
