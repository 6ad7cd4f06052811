package tables

import (
	"strings"
	"testing"
)

func TestAliasesAreUniqueAndUpperCase(t *testing.T) {
	set := Default()
	tests := []struct {
		name    string
		entries []ConversionEntry
	}{
		{"street types", set.StreetTypes},
		{"unit types", set.UnitTypes},
		{"ordinals", set.Ordinals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]bool, len(tt.entries))
			for _, e := range tt.entries {
				if seen[e.Alias] {
					t.Errorf("duplicate alias %q", e.Alias)
				}
				seen[e.Alias] = true
				if e.Alias != strings.ToUpper(e.Alias) || e.Canonical != strings.ToUpper(e.Canonical) {
					t.Errorf("entry %+v is not upper case", e)
				}
				if e.Canonical == "" {
					t.Errorf("alias %q has no canonical value", e.Alias)
				}
			}
		})
	}
}

func TestCanonicalAbbreviationsMapToThemselves(t *testing.T) {
	set := Default()
	for _, entries := range [][]ConversionEntry{set.StreetTypes, set.UnitTypes} {
		aliases := make(map[string]string, len(entries))
		for _, e := range entries {
			aliases[e.Alias] = e.Canonical
		}
		for _, e := range entries {
			got, ok := aliases[e.Canonical]
			if !ok {
				continue
			}
			if got != e.Canonical {
				t.Errorf("canonical %q maps to %q", e.Canonical, got)
			}
		}
	}
}

func TestHeadersAreNotShadowed(t *testing.T) {
	set := Default()
	for _, headers := range [][]string{set.POBoxHeaders, set.RuralRouteHeaders} {
		for i, later := range headers {
			for _, earlier := range headers[:i] {
				if strings.HasPrefix(later, earlier) {
					t.Errorf("header %q can never match, %q precedes it", later, earlier)
				}
			}
		}
	}
}

func TestDefaultReturnsCopies(t *testing.T) {
	first := Default()
	first.StreetTypes[0].Canonical = "CHANGED"
	first.Directionals[0] = "X"

	second := Default()
	if second.StreetTypes[0].Canonical == "CHANGED" || second.Directionals[0] == "X" {
		t.Error("Default() shares backing arrays between calls")
	}
}
