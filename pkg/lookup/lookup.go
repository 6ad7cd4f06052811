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

// Package lookup builds the sorted alias tables once and answers exact-match
// queries against them.
package lookup

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/TFMV/DeliveryLine/pkg/tables"
)

// ErrInvalidTable is returned when a table cannot be indexed.
var ErrInvalidTable = errors.New("invalid conversion table")

// Table is an immutable conversion table sorted by alias.
type Table struct {
	entries []tables.ConversionEntry
}

func newTable(name string, src []tables.ConversionEntry) (Table, error) {
	entries := slices.Clone(src)
	slices.SortFunc(entries, func(a, b tables.ConversionEntry) int {
		return strings.Compare(a.Alias, b.Alias)
	})
	for i, e := range entries {
		if e.Alias == "" {
			return Table{}, fmt.Errorf("%w: %s has an empty alias", ErrInvalidTable, name)
		}
		if i > 0 && entries[i-1].Alias == e.Alias {
			return Table{}, fmt.Errorf("%w: %s has duplicate alias %q", ErrInvalidTable, name, e.Alias)
		}
	}
	return Table{entries: entries}, nil
}

// Lookup returns the entry whose alias equals key exactly.
func (t Table) Lookup(key string) (tables.ConversionEntry, bool) {
	i, found := slices.BinarySearchFunc(t.entries, key, func(e tables.ConversionEntry, k string) int {
		return strings.Compare(e.Alias, k)
	})
	if !found {
		return tables.ConversionEntry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Service answers every table query the parser needs. A Service never
// changes after construction and is safe for concurrent use.
type Service struct {
	directionals      Table
	streetTypes       Table
	unitTypes         Table
	ordinals          Table
	poBoxHeaders      []string
	ruralRouteHeaders []string
}

// New builds a Service from the built-in tables.
func New() *Service {
	svc, err := NewFromTables(tables.Default())
	if err != nil {
		// The built-in tables are covered by tests.
		panic(err)
	}
	return svc
}

// NewFromTables builds a Service from caller supplied tables.
func NewFromTables(set tables.Set) (*Service, error) {
	dirs := make([]tables.ConversionEntry, 0, len(set.Directionals))
	for _, d := range set.Directionals {
		dirs = append(dirs, tables.ConversionEntry{Alias: d, Canonical: d})
	}

	svc := &Service{
		poBoxHeaders:      slices.Clone(set.POBoxHeaders),
		ruralRouteHeaders: slices.Clone(set.RuralRouteHeaders),
	}

	var err error
	if svc.directionals, err = newTable("directionals", dirs); err != nil {
		return nil, err
	}
	if svc.streetTypes, err = newTable("street types", set.StreetTypes); err != nil {
		return nil, err
	}
	if svc.unitTypes, err = newTable("unit types", set.UnitTypes); err != nil {
		return nil, err
	}
	if svc.ordinals, err = newTable("ordinals", set.Ordinals); err != nil {
		return nil, err
	}
	for _, h := range append(slices.Clone(svc.poBoxHeaders), svc.ruralRouteHeaders...) {
		if h == "" {
			return nil, fmt.Errorf("%w: empty header", ErrInvalidTable)
		}
	}
	return svc, nil
}

var (
	defaultOnce    sync.Once
	defaultService *Service
)

// Default returns the process wide Service built from the built-in tables.
// The first call builds it; concurrent first calls wait for that build.
func Default() *Service {
	defaultOnce.Do(func() {
		defaultService = New()
	})
	return defaultService
}

// StreetType looks up a street suffix such as "STREET" or "BLVD".
func (s *Service) StreetType(token string) (tables.ConversionEntry, bool) {
	return s.streetTypes.Lookup(token)
}

// UnitType looks up a secondary unit designator such as "SUITE".
func (s *Service) UnitType(token string) (tables.ConversionEntry, bool) {
	return s.unitTypes.Lookup(token)
}

// Ordinal looks up a short ordinal such as "3RD".
func (s *Service) Ordinal(token string) (tables.ConversionEntry, bool) {
	return s.ordinals.Lookup(token)
}

// IsDirectional reports whether token is a compass directional.
func (s *Service) IsDirectional(token string) bool {
	_, ok := s.directionals.Lookup(token)
	return ok
}

// MatchPOBoxHeader returns the first PO box header that line starts with.
func (s *Service) MatchPOBoxHeader(line string) (string, bool) {
	return matchHeader(s.poBoxHeaders, line)
}

// MatchRuralRouteHeader returns the first rural route header that line
// starts with.
func (s *Service) MatchRuralRouteHeader(line string) (string, bool) {
	return matchHeader(s.ruralRouteHeaders, line)
}

func matchHeader(headers []string, line string) (string, bool) {
	for _, h := range headers {
		if strings.HasPrefix(line, h) {
			return h, true
		}
	}
	return "", false
}

// StreetTypeCount returns the number of street type aliases.
func (s *Service) StreetTypeCount() int {
	return s.streetTypes.Len()
}

// UnitTypeCount returns the number of unit type aliases.
func (s *Service) UnitTypeCount() int {
	return s.unitTypes.Len()
}
