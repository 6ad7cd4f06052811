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
	"fmt"
	"io"
	"strings"
)

const (
	// MaxElementSize is the longest value kept in a single address element.
	MaxElementSize = 64
	// MaxRemainderSize is the longest value kept in the remainder, and the
	// longest input line that is read.
	MaxRemainderSize = 4 * MaxElementSize
)

// ParsedAddress is the decomposition of one delivery line. Fields that do
// not apply to the line are empty.
type ParsedAddress struct {
	StreetNumber    string `json:"street_number" yaml:"street_number"`
	PreDirectional  string `json:"pre_directional" yaml:"pre_directional"`
	StreetName      string `json:"street_name" yaml:"street_name"`
	StreetType      string `json:"street_type" yaml:"street_type"`
	PostDirectional string `json:"post_directional" yaml:"post_directional"`
	UnitType        string `json:"unit_type" yaml:"unit_type"`
	UnitNumber      string `json:"unit_number" yaml:"unit_number"`
	POBox           string `json:"po_box" yaml:"po_box"`
	RuralRoute      string `json:"rural_route" yaml:"rural_route"`
	Remainder       string `json:"remainder" yaml:"remainder"`
}

// Field is one named element of a ParsedAddress.
type Field struct {
	Name  string
	Label string
	Value string
}

// Fields returns every element in delivery line order.
func (a ParsedAddress) Fields() []Field {
	return []Field{
		{"street_number", "Street number", a.StreetNumber},
		{"pre_directional", "Pre directional", a.PreDirectional},
		{"street_name", "Street name", a.StreetName},
		{"street_type", "Street type", a.StreetType},
		{"post_directional", "Post directional", a.PostDirectional},
		{"unit_type", "Unit type", a.UnitType},
		{"unit_number", "Unit number", a.UnitNumber},
		{"po_box", "PO box", a.POBox},
		{"rural_route", "Rural route", a.RuralRoute},
		{"remainder", "Remainder", a.Remainder},
	}
}

// IsBlank reports whether no element was recognized.
func (a ParsedAddress) IsBlank() bool {
	return a == ParsedAddress{}
}

// Shape reports which kind of delivery line was recognized.
func (a ParsedAddress) Shape() Shape {
	switch {
	case a.POBox != "":
		return ShapePOBox
	case a.RuralRoute != "":
		return ShapeRuralRoute
	}
	return ShapeStreet
}

// FullLine joins every populated element with single spaces.
func (a ParsedAddress) FullLine() string {
	values := make([]string, 0, 10)
	for _, f := range a.Fields() {
		values = append(values, f.Value)
	}
	return joinNonEmpty(values...)
}

// FullLineNoNumber is FullLine without the street number. It is empty for PO
// boxes and rural routes.
func (a ParsedAddress) FullLineNoNumber() string {
	if a.POBox != "" || a.RuralRoute != "" {
		return ""
	}
	b := a
	b.StreetNumber = ""
	return b.FullLine()
}

// Dump writes one line per element for debugging.
func (a ParsedAddress) Dump(w io.Writer) error {
	for _, f := range a.Fields() {
		if _, err := fmt.Fprintf(w, "%-17s ~%s~\n", f.Label+":", f.Value); err != nil {
			return err
		}
	}
	return nil
}

// truncate cuts s to at most limit characters.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

func element(s string) string {
	return truncate(s, MaxElementSize)
}

func remainder(tokens []string) string {
	return truncate(strings.Join(tokens, " "), MaxRemainderSize)
}

func joinNonEmpty(values ...string) string {
	var b strings.Builder
	for _, v := range values {
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v)
	}
	return b.String()
}
