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

// Normalize rebuilds raw as a canonical delivery line of at most capacity
// characters. Ordinals in the street name are spelled out and anything left
// in the remainder is dropped. Lines without a street name, such as PO
// boxes, rural routes and lines with no street type, come back unchanged,
// as does every line when capacity is not positive.
func (s *Standardizer) Normalize(raw string, capacity int) string {
	if capacity <= 0 {
		return raw
	}
	a := s.Parse(raw)
	if a.StreetName == "" {
		return raw
	}

	words := strings.Fields(a.StreetName)
	for i, w := range words {
		if e, ok := s.lookup.Ordinal(w); ok {
			words[i] = e.Canonical
		}
	}

	line := joinNonEmpty(
		a.StreetNumber,
		a.PreDirectional,
		strings.Join(words, " "),
		a.StreetType,
		a.PostDirectional,
		a.UnitType,
		a.UnitNumber,
	)
	return truncate(line, capacity)
}
