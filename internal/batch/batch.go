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

// Package batch parses stored delivery lines with a pool of workers and
// writes the results back in batches.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/TFMV/DeliveryLine/pkg/utils"
	"github.com/TFMV/DeliveryLine/standardizer"
)

// Line is one stored delivery line.
type Line struct {
	ID     int64
	Street string
}

// Result is the parse of one Line.
type Result struct {
	LineID     int64                      `json:"line_id"`
	Street     string                     `json:"street"`
	Parsed     standardizer.ParsedAddress `json:"parsed"`
	Normalized string                     `json:"normalized"`
	Tokens     int                        `json:"tokens"`
}

// Store reads lines for a run and saves their results. InsertResults must
// not keep a reference to results after it returns.
type Store interface {
	StreamLines(ctx context.Context, runID int, fn func(Line) error) error
	InsertResults(ctx context.Context, runID int, results []Result) error
}

// Options tunes ProcessStreetLines.
type Options struct {
	Workers   int
	BatchSize int
	Capacity  int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 10
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 1000
	}
	if o.Capacity <= 0 {
		o.Capacity = standardizer.MaxRemainderSize
	}
	return o
}

// Standardize parses and normalizes one line.
func Standardize(std *standardizer.Standardizer, line Line, capacity int) Result {
	return Result{
		LineID:     line.ID,
		Street:     line.Street,
		Parsed:     std.Parse(line.Street),
		Normalized: std.Normalize(line.Street, capacity),
		Tokens:     len(std.Tokenize(line.Street).Tokens),
	}
}

// ProcessStreetLines parses every line of runID. Workers parse in parallel
// while a single writer inserts results in batches of opts.BatchSize. The
// first read or write error stops the run.
func ProcessStreetLines(ctx context.Context, store Store, std *standardizer.Standardizer, opts Options, runID int, logger *utils.Logger) (Summary, error) {
	opts = opts.withDefaults()
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	lineCh := make(chan Line, opts.BatchSize)
	resultCh := make(chan Result, opts.BatchSize)

	// Start worker goroutines
	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range lineCh {
				select {
				case resultCh <- Standardize(std, line, opts.Capacity):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Insert results in batches
	var summary summaryBuilder
	writeErrCh := make(chan error, 1)
	go func() {
		var err error
		batch := make([]Result, 0, opts.BatchSize)
		flush := func() {
			logger.Debug("Inserting batch of %d results for run %d", len(batch), runID)
			if err = store.InsertResults(ctx, runID, batch); err != nil {
				cancel(err)
			}
			batch = batch[:0]
		}
		for res := range resultCh {
			summary.add(res)
			if err != nil {
				continue
			}
			batch = append(batch, res)
			if len(batch) >= opts.BatchSize {
				flush()
			}
		}
		if err == nil && len(batch) > 0 {
			flush()
		}
		writeErrCh <- err
	}()

	// Enqueue lines for processing
	readErr := store.StreamLines(ctx, runID, func(line Line) error {
		select {
		case lineCh <- line:
			return nil
		case <-ctx.Done():
			return context.Cause(ctx)
		}
	})
	close(lineCh)
	wg.Wait()
	close(resultCh)
	writeErr := <-writeErrCh

	if writeErr != nil {
		return Summary{}, fmt.Errorf("failed to insert results for run %d: %w", runID, writeErr)
	}
	if readErr != nil {
		return Summary{}, fmt.Errorf("failed to read street lines for run %d: %w", runID, readErr)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, fmt.Errorf("run %d interrupted: %w", runID, context.Cause(ctx))
	}

	s := summary.build()
	logger.Info("Run %d parsed %d lines (%d street, %d PO box, %d rural route, %d unrecognized)",
		runID, s.Lines, s.Street, s.POBox, s.RuralRoute, s.Unrecognized)
	return s, nil
}
