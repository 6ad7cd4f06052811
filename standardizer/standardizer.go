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

// Package standardizer parses the delivery line of a US mailing address
// into its USPS elements and rebuilds a canonical line from them.
package standardizer

import (
	"github.com/TFMV/DeliveryLine/pkg/lookup"
	"github.com/TFMV/DeliveryLine/pkg/tables"
)

// Standardizer parses and normalizes delivery lines against one lookup
// service. It holds no mutable state and is safe for concurrent use.
type Standardizer struct {
	lookup *lookup.Service
}

// New returns a Standardizer backed by svc. A nil svc uses lookup.Default().
func New(svc *lookup.Service) *Standardizer {
	if svc == nil {
		svc = lookup.Default()
	}
	return &Standardizer{lookup: svc}
}

// Lookup returns the service the Standardizer reads its tables from.
func (s *Standardizer) Lookup() *lookup.Service {
	return s.lookup
}

// ParseAddressLine parses raw with the built-in tables.
func ParseAddressLine(raw string) ParsedAddress {
	return New(nil).Parse(raw)
}

// NormalizeAddressLine normalizes raw with the built-in tables.
func NormalizeAddressLine(raw string, capacity int) string {
	return New(nil).Normalize(raw, capacity)
}

// LookupStreetType resolves a street suffix alias with the built-in tables.
func LookupStreetType(token string) (tables.ConversionEntry, bool) {
	return lookup.Default().StreetType(token)
}

// LookupUnitType resolves a unit designator alias with the built-in tables.
func LookupUnitType(token string) (tables.ConversionEntry, bool) {
	return lookup.Default().UnitType(token)
}
