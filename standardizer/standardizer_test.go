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
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/TFMV/DeliveryLine/pkg/lookup"
	"github.com/TFMV/DeliveryLine/pkg/tables"
)

func TestParseAddressLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ParsedAddress
	}{
		{
			name:     "Unit ahead of street name",
			input:    "5397 Apt 16-18 Cedar Lake Road",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "APT", UnitNumber: "1618"},
		},
		{
			name:     "Bare hash ahead of street name",
			input:    "5397 # 16-18 Cedar Lake Road",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "UNIT", UnitNumber: "1618"},
		},
		{
			name:     "Inline hash ahead of street name",
			input:    "5397 #16-18 Cedar Lake Road",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "UNIT", UnitNumber: "1618"},
		},
		{
			name:     "Plain street",
			input:    "13298 Citrus Grove Blvd",
			expected: ParsedAddress{StreetNumber: "13298", StreetName: "CITRUS GROVE", StreetType: "BLVD"},
		},
		{
			name:     "Post directional",
			input:    "5600 Broken Sound Blvd NW",
			expected: ParsedAddress{StreetNumber: "5600", StreetName: "BROKEN SOUND", StreetType: "BLVD", PostDirectional: "NW"},
		},
		{
			name:     "Unit after street type",
			input:    "5397 Cedar Lake Road Apt 1618",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "APT", UnitNumber: "1618"},
		},
		{
			name:     "Bare hash after street type",
			input:    "5397 Cedar Lake Road # 1618",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "UNIT", UnitNumber: "1618"},
		},
		{
			name:     "Inline hash after street type",
			input:    "5397 Cedar Lake Road #1618",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "UNIT", UnitNumber: "1618"},
		},
		{
			name:     "Trailing bare hash",
			input:    "5397 Cedar Lake Road #",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "UNIT"},
		},
		{
			name:     "Trailing unit word",
			input:    "5397 Cedar Lake Road Apt",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR LAKE", StreetType: "RD", UnitType: "APT"},
		},
		{
			name:     "Directional used as name",
			input:    "123 E Rd",
			expected: ParsedAddress{StreetNumber: "123", StreetName: "E", StreetType: "RD"},
		},
		{
			name:     "Pre directional",
			input:    "742 Evergreen N Ter",
			expected: ParsedAddress{StreetNumber: "742", PreDirectional: "N", StreetName: "EVERGREEN", StreetType: "TER"},
		},
		{
			name:     "Numbered highway",
			input:    "123 STATE HWY 715",
			expected: ParsedAddress{StreetNumber: "123", StreetName: "STATE HWY 715"},
		},
		{
			name:     "Unit word leads the line",
			input:    "Apt 5 100 Main St",
			expected: ParsedAddress{StreetNumber: "100", StreetName: "MAIN", StreetType: "ST", UnitType: "APT", UnitNumber: "5"},
		},
		{
			name:     "Unit synonym is canonicalized",
			input:    "3030 Business Center Drive, Suite 200",
			expected: ParsedAddress{StreetNumber: "3030", StreetName: "BUSINESS CENTER", StreetType: "DR", UnitType: "STE", UnitNumber: "200"},
		},
		{
			name:     "Unit word right before street type",
			input:    "5397 Cedar Apt Road",
			expected: ParsedAddress{StreetNumber: "5397", StreetName: "CEDAR", StreetType: "RD", UnitType: "APT"},
		},
		{
			name:     "Unrecognized trailing text",
			input:    "6060 WESTERN HEIGHTS COURT NORTHWEST",
			expected: ParsedAddress{StreetNumber: "6060", StreetName: "WESTERN HEIGHTS", StreetType: "CT", Remainder: "NORTHWEST"},
		},
		{
			name:     "No street number",
			input:    "Old Mill Road",
			expected: ParsedAddress{StreetName: "OLD MILL", StreetType: "RD"},
		},
		{
			name:     "No street type",
			input:    "100 Nowhere Special",
			expected: ParsedAddress{Remainder: "100 NOWHERE SPECIAL"},
		},
		{
			name:     "Street type in the first two tokens only",
			input:    "Main St",
			expected: ParsedAddress{Remainder: "MAIN ST"},
		},
		{
			name:     "Rural route",
			input:    "Rural Route 2 Box 123",
			expected: ParsedAddress{RuralRoute: "RURAL ROUTE 2 BOX 123"},
		},
		{
			name:     "Rural route with hash box and remainder",
			input:    "Rural Rte 4 # 56 Rear",
			expected: ParsedAddress{RuralRoute: "RURAL ROUTE 4 BOX 56", Remainder: "REAR"},
		},
		{
			name:     "Rural route with inline hash box",
			input:    "RR 7 #88",
			expected: ParsedAddress{RuralRoute: "RURAL ROUTE 7 BOX 88"},
		},
		{
			name:     "Rural route without spaces",
			input:    "RR 12#34",
			expected: ParsedAddress{RuralRoute: "RURAL ROUTE 12 BOX 34"},
		},
		{
			name:     "Rural route without box",
			input:    "RR 3",
			expected: ParsedAddress{},
		},
		{
			name:     "PO box takes the second token",
			input:    "P.O. Box 12 34 Rear",
			expected: ParsedAddress{POBox: "PO BOX 34", Remainder: "REAR"},
		},
		{
			name:     "PO box with a single token",
			input:    "PO Box 123",
			expected: ParsedAddress{},
		},
		{
			name:     "Empty line",
			input:    "",
			expected: ParsedAddress{},
		},
		{
			name:     "Blank line",
			input:    "  \t ",
			expected: ParsedAddress{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAddressLine(tt.input)
			if result != tt.expected {
				t.Errorf("ParseAddressLine(%q) =\n%+v\nwant\n%+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeAddressLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		capacity int
		expected string
	}{
		{"Street type synonym", "13298 Citrus Grove Boulevard", 256, "13298 CITRUS GROVE BLVD"},
		{"Unit moved after street", "5397 Apt 16-18 Cedar Lake Road", 256, "5397 CEDAR LAKE RD APT 1618"},
		{"Ordinal spelled out", "100 5th Ave", 256, "100 FIFTH AVE"},
		{"Eighth", "100 8th Street", 256, "100 EIGHTH ST"},
		{"Ordinal inside a longer name", "100 W 5th St", 256, "100 W FIFTH ST"},
		{"Post directional kept", "5600 Broken Sound Blvd NW", 256, "5600 BROKEN SOUND BLVD NW"},
		{"Remainder dropped", "6060 Western Heights Court Northwest", 256, "6060 WESTERN HEIGHTS CT"},
		{"Numbered highway", "123 State Hwy 715", 256, "123 STATE HWY 715"},
		{"Truncated to capacity", "5397 Cedar Lake Road Apt 1618", 10, "5397 CEDAR"},
		{"PO box unchanged", "PO Box 12 34", 256, "PO Box 12 34"},
		{"Rural route unchanged", "Rural Route 2 Box 123", 256, "Rural Route 2 Box 123"},
		{"No street type unchanged", "somewhere over there", 256, "somewhere over there"},
		{"Zero capacity unchanged", "100 5th Ave", 0, "100 5th Ave"},
		{"Negative capacity unchanged", "100 5th Ave", -1, "100 5th Ave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeAddressLine(tt.input, tt.capacity)
			if result != tt.expected {
				t.Errorf("NormalizeAddressLine(%q, %d) = %q, want %q", tt.input, tt.capacity, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"5397 Apt 16-18 Cedar Lake Road",
		"5397 #16-18 Cedar Lake Road",
		"13298 Citrus Grove Blvd",
		"5600 Broken Sound Blvd NW",
		"5397 Cedar Lake Road #",
		"5397 Cedar Apt Road",
		"100 W 3rd Street Suite 9",
		"742 Evergreen N Terrace",
		"123 E Rd",
		"123 State Highway 715",
		"Apt 5 100 Main St",
		"PO Box 12 34",
		"RR 12#34",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := NormalizeAddressLine(input, 256)
			twice := NormalizeAddressLine(once, 256)
			if once != twice {
				t.Errorf("NormalizeAddressLine not a fixed point: %q -> %q -> %q", input, once, twice)
			}
		})
	}
}

func TestStreetTypeSynonyms(t *testing.T) {
	for _, e := range tables.Default().StreetTypes {
		t.Run(e.Alias, func(t *testing.T) {
			result := ParseAddressLine("100 MAIN " + e.Alias)
			if result.StreetType != e.Canonical {
				t.Errorf("street type for %q = %q, want %q", e.Alias, result.StreetType, e.Canonical)
			}
			if result.StreetName != "MAIN" {
				t.Errorf("street name for %q = %q, want MAIN", e.Alias, result.StreetName)
			}
		})
	}
}

func TestUnitTypeSynonyms(t *testing.T) {
	for _, e := range tables.Default().UnitTypes {
		t.Run(e.Alias, func(t *testing.T) {
			result := ParseAddressLine("100 " + e.Alias + " 5 MAIN ST")
			if result.UnitType != e.Canonical || result.UnitNumber != "5" {
				t.Errorf("unit for %q = %q %q, want %q 5", e.Alias, result.UnitType, result.UnitNumber, e.Canonical)
			}
			if result.StreetName != "MAIN" || result.StreetType != "ST" {
				t.Errorf("street for %q = %q %q, want MAIN ST", e.Alias, result.StreetName, result.StreetType)
			}
		})
	}
}

func TestShapeExclusivity(t *testing.T) {
	inputs := []string{
		"PO Box 12 34",
		"POBOX 1 2",
		"PO 9 Main St",
		"Rural Route 2 Box 123",
		"RR 12#34",
		"5397 Cedar Lake Road",
		"Box 12 Main St",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			a := ParseAddressLine(input)
			set := 0
			for _, v := range []string{a.POBox, a.RuralRoute, a.StreetName} {
				if v != "" {
					set++
				}
			}
			if set > 1 {
				t.Errorf("ParseAddressLine(%q) populated %d shapes: %+v", input, set, a)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	const input = "5397 Apt 16-18 Cedar Lake Road"
	want := ParseAddressLine(input)

	var wg sync.WaitGroup
	results := make([]ParsedAddress, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ParseAddressLine(input)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != want {
			t.Errorf("result %d = %+v, want %+v", i, r, want)
		}
	}
}

func TestElementLimits(t *testing.T) {
	longName := strings.Repeat("X", 100)
	a := ParseAddressLine("100 " + longName + " Main St")
	if got := len(a.StreetName); got != MaxElementSize {
		t.Errorf("street name length = %d, want %d", got, MaxElementSize)
	}

	a = ParseAddressLine(strings.Repeat("WORD ", 100) + "ST")
	if a.StreetType != "" {
		t.Errorf("street type = %q, want input cut before the trailing ST", a.StreetType)
	}
	if got := len([]rune(a.Remainder)); got > MaxRemainderSize {
		t.Errorf("remainder length = %d, want at most %d", got, MaxRemainderSize)
	}

	a = ParseAddressLine("PO Box 1 " + longName)
	if got := len(a.POBox); got != MaxElementSize {
		t.Errorf("po box length = %d, want %d", got, MaxElementSize)
	}
}

func TestTokenize(t *testing.T) {
	std := New(nil)
	tests := []struct {
		name   string
		input  string
		shape  Shape
		tokens []string
	}{
		{"Street", "123 Main St.", ShapeStreet, []string{"123", "MAIN", "ST"}},
		{"Hash kept", "12 Elm St, Apt #5", ShapeStreet, []string{"12", "ELM", "ST", "APT", "#5"}},
		{"PO box punctuation", "P.O. Box 12", ShapePOBox, []string{"12"}},
		{"POBOX", "pobox 7", ShapePOBox, []string{"7"}},
		{"Rural route", "rr 5 box 7", ShapeRuralRoute, []string{"5", "BOX", "7"}},
		{"Rural rte", "Rural Rte 5", ShapeRuralRoute, []string{"5"}},
		{"Header needs a space", "RR5", ShapeStreet, []string{"RR5"}},
		{"Empty", "", ShapeStreet, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := std.Tokenize(tt.input)
			if result.Shape != tt.shape {
				t.Errorf("Tokenize(%q) shape = %v, want %v", tt.input, result.Shape, tt.shape)
			}
			if strings.Join(result.Tokens, "|") != strings.Join(tt.tokens, "|") {
				t.Errorf("Tokenize(%q) tokens = %q, want %q", tt.input, result.Tokens, tt.tokens)
			}
		})
	}
}

func TestTokenizeCapsInput(t *testing.T) {
	result := New(nil).Tokenize(strings.Repeat("a", 300))
	if len(result.Text) != MaxRemainderSize {
		t.Errorf("cleaned length = %d, want %d", len(result.Text), MaxRemainderSize)
	}
}

func TestInjectedTables(t *testing.T) {
	set := tables.Default()
	set.StreetTypes = append(set.StreetTypes, tables.ConversionEntry{Alias: "ZZROAD", Canonical: "ZZRD"})
	svc, err := lookup.NewFromTables(set)
	if err != nil {
		t.Fatalf("NewFromTables() error = %v", err)
	}

	std := New(svc)
	if got := std.Parse("100 Main ZZRoad").StreetType; got != "ZZRD" {
		t.Errorf("street type = %q, want ZZRD", got)
	}
	if got := ParseAddressLine("100 Main ZZRoad").StreetType; got != "" {
		t.Errorf("default street type = %q, want none", got)
	}
}

func TestLookupHelpers(t *testing.T) {
	if e, ok := LookupStreetType("AVENUE"); !ok || e.Canonical != "AVE" {
		t.Errorf("LookupStreetType(AVENUE) = %v, %v", e, ok)
	}
	if e, ok := LookupUnitType("SUITE"); !ok || e.Canonical != "STE" {
		t.Errorf("LookupUnitType(SUITE) = %v, %v", e, ok)
	}
	if _, ok := LookupStreetType("avenue"); ok {
		t.Error("LookupStreetType matched a lower-case alias")
	}
}

func TestFullLine(t *testing.T) {
	a := ParseAddressLine("5397 Cedar Lake Road Apt 1618 Back")
	if got, want := a.FullLine(), "5397 CEDAR LAKE RD APT 1618 BACK"; got != want {
		t.Errorf("FullLine() = %q, want %q", got, want)
	}
	if got, want := a.FullLineNoNumber(), "CEDAR LAKE RD APT 1618 BACK"; got != want {
		t.Errorf("FullLineNoNumber() = %q, want %q", got, want)
	}

	rr := ParseAddressLine("Rural Route 2 Box 123")
	if got := rr.FullLineNoNumber(); got != "" {
		t.Errorf("FullLineNoNumber() for rural route = %q, want empty", got)
	}
	if rr.Shape() != ShapeRuralRoute {
		t.Errorf("Shape() = %v, want %v", rr.Shape(), ShapeRuralRoute)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := ParseAddressLine("13298 Citrus Grove Blvd").Dump(&buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("Dump() wrote %d lines, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[2], "Street name:") || !strings.HasSuffix(lines[2], "~CITRUS GROVE~") {
		t.Errorf("Dump() street name line = %q", lines[2])
	}
	if !strings.HasSuffix(lines[9], "~~") {
		t.Errorf("Dump() remainder line = %q", lines[9])
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Only digits", "12345", true},
		{"Digits and letters", "123abc", false},
		{"Empty string", "", false},
		{"Special characters", "123-456", false},
		{"Decimal number", "123.45", false},
		{"Large number", "9876543210", true},
		{"Non-ASCII digits", "١٢٣", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNumeric(tt.input)
			if result != tt.expected {
				t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
