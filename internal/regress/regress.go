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

// Package regress checks the parser against a table of known delivery lines
// and reports every element that does not match.
package regress

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/TFMV/DeliveryLine/standardizer"
)

//go:embed fixtures.yaml
var builtinFixtures []byte

const columnFormat = "%-64s  %-64s\n"

// Fixture is one input line and the elements it should parse into.
type Fixture struct {
	Input    string                     `yaml:"input"`
	Expected standardizer.ParsedAddress `yaml:"expected"`
}

// Mismatch is one element whose parsed value differs from the fixture.
type Mismatch struct {
	Field    string
	Expected string
	Obtained string
}

// Result is the outcome of parsing one fixture.
type Result struct {
	Fixture    Fixture
	Obtained   standardizer.ParsedAddress
	Mismatches []Mismatch
}

// Passed reports whether every element matched.
func (r Result) Passed() bool {
	return len(r.Mismatches) == 0
}

// Report collects the results of a run in fixture order.
type Report struct {
	Results []Result
}

// Passed reports whether every fixture matched.
func (r Report) Passed() bool {
	return r.Failed() == 0
}

// Failed returns the number of fixtures with at least one mismatch.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// DefaultFixtures returns the fixtures built into the binary.
func DefaultFixtures() ([]Fixture, error) {
	return ParseFixtures(builtinFixtures)
}

// LoadFixtures reads fixtures from a YAML file.
func LoadFixtures(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes a YAML list of fixtures.
func ParseFixtures(data []byte) ([]Fixture, error) {
	var fixtures []Fixture
	if err := yaml.UnmarshalStrict(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("no fixtures found")
	}
	return fixtures, nil
}

// Run parses every fixture input and compares all ten elements.
func Run(std *standardizer.Standardizer, fixtures []Fixture) Report {
	report := Report{Results: make([]Result, 0, len(fixtures))}
	for _, f := range fixtures {
		got := std.Parse(f.Input)
		report.Results = append(report.Results, Result{
			Fixture:    f,
			Obtained:   got,
			Mismatches: compare(f.Expected, got),
		})
	}
	return report
}

func compare(expected, obtained standardizer.ParsedAddress) []Mismatch {
	var out []Mismatch
	want := expected.Fields()
	for i, f := range obtained.Fields() {
		if f.Value != want[i].Value {
			out = append(out, Mismatch{Field: f.Name, Expected: want[i].Value, Obtained: f.Value})
		}
	}
	return out
}

// Write prints every failure with expected and obtained values side by
// side, then a one line summary.
func (r Report) Write(w io.Writer) error {
	passed := 0
	for _, res := range r.Results {
		if res.Passed() {
			passed++
			continue
		}
		if err := writeFailure(w, res); err != nil {
			return err
		}
	}

	var err error
	if failed := len(r.Results) - passed; failed == 0 {
		_, err = fmt.Fprintf(w, "All %d unit tests passed\n", passed)
	} else {
		_, err = fmt.Fprintf(w, "Failure count: %d -- Pass count: %d\n", failed, passed)
	}
	return err
}

func writeFailure(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "FAILURE for input ===== %s =====\n", res.Fixture.Input); err != nil {
		return err
	}
	rows := [][2]string{{"Expected", "Obtained"}, {"--------", "--------"}}
	want := res.Fixture.Expected.Fields()
	for i, f := range res.Obtained.Fields() {
		rows = append(rows, [2]string{want[i].Value, f.Value})
	}
	rows = append(rows, [2]string{"--------", "--------"})
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, columnFormat, row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}
