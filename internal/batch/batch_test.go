package batch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/TFMV/DeliveryLine/standardizer"
)

type memStore struct {
	mu        sync.Mutex
	lines     map[int][]Line
	results   map[int][]Result
	batches   []int
	insertErr error
}

func newMemStore(runID int, streets ...string) *memStore {
	s := &memStore{lines: map[int][]Line{}, results: map[int][]Result{}}
	for i, street := range streets {
		s.lines[runID] = append(s.lines[runID], Line{ID: int64(i + 1), Street: street})
	}
	return s
}

func (s *memStore) StreamLines(ctx context.Context, runID int, fn func(Line) error) error {
	for _, l := range s.lines[runID] {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) InsertResults(ctx context.Context, runID int, results []Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	s.batches = append(s.batches, len(results))
	s.results[runID] = append(s.results[runID], append([]Result(nil), results...)...)
	return nil
}

func TestProcessStreetLines(t *testing.T) {
	store := newMemStore(7,
		"5397 Apt 16-18 Cedar Lake Road",
		"13298 Citrus Grove Blvd",
		"PO Box 12 34",
		"Rural Route 2 Box 123",
		"nothing to see",
	)

	summary, err := ProcessStreetLines(context.Background(), store, standardizer.New(nil), Options{Workers: 3, BatchSize: 2}, 7, nil)
	if err != nil {
		t.Fatalf("ProcessStreetLines() error = %v", err)
	}

	results := store.results[7]
	if len(results) != 5 {
		t.Fatalf("stored %d results, want 5", len(results))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].LineID < results[j].LineID })

	if got := results[0].Normalized; got != "5397 CEDAR LAKE RD APT 1618" {
		t.Errorf("normalized line 1 = %q", got)
	}
	if got := results[3].Parsed.RuralRoute; got != "RURAL ROUTE 2 BOX 123" {
		t.Errorf("rural route line 4 = %q", got)
	}

	for _, n := range store.batches {
		if n > 2 {
			t.Errorf("batch of %d results exceeds batch size 2", n)
		}
	}

	want := Summary{Lines: 5, Street: 2, POBox: 1, RuralRoute: 1, Unrecognized: 1, WithUnit: 1, WithRemainder: 1}
	got := summary
	got.MeanTokens, got.StdDevTokens = 0, 0
	if got != want {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
	// token counts 6, 4, 2, 3, 3
	if math.Abs(summary.MeanTokens-3.6) > 1e-9 {
		t.Errorf("mean tokens = %v, want 3.6", summary.MeanTokens)
	}
	if summary.StdDevTokens <= 0 {
		t.Errorf("stddev tokens = %v, want positive", summary.StdDevTokens)
	}
}

func TestProcessStreetLinesEmptyRun(t *testing.T) {
	store := newMemStore(1)
	summary, err := ProcessStreetLines(context.Background(), store, standardizer.New(nil), Options{}, 1, nil)
	if err != nil {
		t.Fatalf("ProcessStreetLines() error = %v", err)
	}
	if summary != (Summary{}) {
		t.Errorf("summary = %+v, want zero", summary)
	}
	if len(store.batches) != 0 {
		t.Errorf("inserted %d batches for an empty run", len(store.batches))
	}
}

func TestProcessStreetLinesInsertError(t *testing.T) {
	streets := make([]string, 50)
	for i := range streets {
		streets[i] = fmt.Sprintf("%d Main St", i+1)
	}
	store := newMemStore(3, streets...)
	store.insertErr = errors.New("disk full")

	_, err := ProcessStreetLines(context.Background(), store, standardizer.New(nil), Options{Workers: 4, BatchSize: 5}, 3, nil)
	if err == nil || !errors.Is(err, store.insertErr) {
		t.Fatalf("ProcessStreetLines() error = %v, want wrapped %v", err, store.insertErr)
	}
}

func TestProcessStreetLinesCanceled(t *testing.T) {
	store := newMemStore(2, "123 Main St", "456 Oak Ave")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ProcessStreetLines(ctx, store, standardizer.New(nil), Options{Workers: 1, BatchSize: 1}, 2, nil); err == nil {
		t.Fatal("ProcessStreetLines() on a canceled context returned no error")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		mean     float64
		stddev   float64
		expected int
	}{
		{"Empty", nil, 0, 0, 0},
		{"Single", []Result{{Tokens: 4}}, 4, 0, 1},
		{"Pair", []Result{{Tokens: 2}, {Tokens: 4}}, 3, math.Sqrt2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.results)
			if s.Lines != tt.expected {
				t.Errorf("Lines = %d, want %d", s.Lines, tt.expected)
			}
			if math.Abs(s.MeanTokens-tt.mean) > 1e-9 || math.Abs(s.StdDevTokens-tt.stddev) > 1e-9 {
				t.Errorf("mean, stddev = %v, %v, want %v, %v", s.MeanTokens, s.StdDevTokens, tt.mean, tt.stddev)
			}
		})
	}
}

func TestParsedColumns(t *testing.T) {
	cols := ParsedColumns()
	if len(cols) != 10 || cols[0] != "street_number" || cols[9] != "remainder" {
		t.Errorf("ParsedColumns() = %v", cols)
	}
}
