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

// Package tables holds the static alias tables used to classify the delivery
// line of a US mailing address.
package tables

import "slices"

// ConversionEntry pairs a value that may appear in an address line with the
// value preferred by the USPS.
type ConversionEntry struct {
	Alias     string `json:"alias" yaml:"alias"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// Set is every table the lookup service is built from.
type Set struct {
	Directionals      []string
	POBoxHeaders      []string
	RuralRouteHeaders []string
	StreetTypes       []ConversionEntry
	UnitTypes         []ConversionEntry
	Ordinals          []ConversionEntry
}

var directionals = []string{"E", "N", "S", "W", "NE", "NW", "SE", "SW"}

// Header lists are matched in order, so a longer header must come before any
// shorter header it starts with.
var (
	poBoxHeaders      = []string{"POBOX ", "PO BOX ", "PO "}
	ruralRouteHeaders = []string{"RURAL ROUTE ", "RURAL RTE ", "RR "}
)

// unitTypes maps secondary unit designators to their abbreviation.
var unitTypes = []ConversionEntry{
	{"APARTMENT", "APT"},
	{"APT", "APT"},
	{"BASEMENT", "BSMT"},
	{"BLDG", "BLDG"},
	{"BSMT", "BSMT"},
	{"BUILDING", "BLDG"},
	{"DEPARTMENT", "DEPT"},
	{"DEPT", "DEPT"},
	{"FL", "FL"},
	{"FLOOR", "FL"},
	{"FRNT", "FRNT"},
	{"FRONT", "FRNT"},
	{"HANGER", "HNGR"},
	{"HNGR", "HNGR"},
	{"KEY", "KEY"},
	{"LBBY", "LBBY"},
	{"LOBBY", "LBBY"},
	{"LOT", "LOT"},
	{"LOWER", "LOWR"},
	{"LOWR", "LOWR"},
	{"OFC", "OFC"},
	{"OFFICE", "OFC"},
	{"PENTHOUSE", "PH"},
	{"PH", "PH"},
	{"PIER", "PIER"},
	{"REAR", "REAR"},
	{"RM", "RM"},
	{"ROOM", "RM"},
	{"SIDE", "SIDE"},
	{"SLIP", "SLIP"},
	{"SPACE", "SPC"},
	{"SPC", "SPC"},
	{"STE", "STE"},
	{"STOP", "STOP"},
	{"SUITE", "STE"},
	{"TRAILER", "TRLR"},
	{"TRLR", "TRLR"},
	{"UNIT", "UNIT"},
	{"UPPER", "UPPR"},
	{"UPPR", "UPPR"},
}

// ordinals runs the other way from the tables above: it spells out the
// short ordinal form.
var ordinals = []ConversionEntry{
	{"1ST", "FIRST"},
	{"2ND", "SECOND"},
	{"3RD", "THIRD"},
	{"4TH", "FOURTH"},
	{"5TH", "FIFTH"},
	{"6TH", "SIXTH"},
	{"7TH", "SEVENTH"},
	{"8TH", "EIGHTH"},
	{"9TH", "NINTH"},
}

// Default returns a copy of the built-in tables. Callers may modify the
// result without affecting later calls.
func Default() Set {
	return Set{
		Directionals:      slices.Clone(directionals),
		POBoxHeaders:      slices.Clone(poBoxHeaders),
		RuralRouteHeaders: slices.Clone(ruralRouteHeaders),
		StreetTypes:       slices.Clone(streetTypes),
		UnitTypes:         slices.Clone(unitTypes),
		Ordinals:          slices.Clone(ordinals),
	}
}
