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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/TFMV/DeliveryLine/internal/batch"
	"github.com/TFMV/DeliveryLine/pkg/db"
)

func createBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse delivery lines stored in Postgres",
	}

	batchCmd.AddCommand(createBatchRunCmd())
	batchCmd.AddCommand(createBatchRerunCmd())
	batchCmd.AddCommand(createBatchResultsCmd())

	return batchCmd
}

// openStore connects, creates any missing tables and returns the store.
func openStore(ctx context.Context) (*pgxpool.Pool, *batch.PGStore, error) {
	pool, err := db.NewConnection(ctx, cfg.DBCreds)
	if err != nil {
		return nil, nil, err
	}
	tables := db.TablesFromConfig(cfg)
	if err := db.EnsureSchema(ctx, pool, tables); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pool, batch.NewPGStore(pool, tables), nil
}

func batchOptions() batch.Options {
	return batch.Options{
		Workers:   cfg.Batch.Workers,
		BatchSize: cfg.Batch.BatchSize,
		Capacity:  cfg.Normalizer.Capacity,
	}
}

func createBatchRunCmd() *cobra.Command {
	var runLabel string

	cmd := &cobra.Command{
		Use:   "run [csv]",
		Short: "Load a line_id,street CSV as a new run and parse it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			pool, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := store.TruncateLoadTable(ctx); err != nil {
				return err
			}
			copied, err := db.LoadCSVFile(ctx, pool, args[0], cfg.DBCreds.LoadTable)
			if err != nil {
				return err
			}
			logger.Info("Copied %d rows to %s", copied, cfg.DBCreds.LoadTable)

			if runLabel == "" {
				runLabel = "Batch " + filepath.Base(args[0])
			}
			runID, err := store.CreateNewRun(ctx, runLabel)
			if err != nil {
				return err
			}
			if _, err := store.InsertFromLoadTable(ctx, runID); err != nil {
				return err
			}

			summary, err := batch.ProcessStreetLines(ctx, store, std, batchOptions(), runID, logger)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), runID, summary, time.Since(start))
		},
	}

	cmd.Flags().StringVar(&runLabel, "label", "", "Description stored with the run")

	return cmd
}

func createBatchRerunCmd() *cobra.Command {
	var runID int

	cmd := &cobra.Command{
		Use:   "rerun",
		Short: "Parse the lines of an existing run again",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			pool, store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := store.ClearRunResults(ctx, runID); err != nil {
				return err
			}
			summary, err := batch.ProcessStreetLines(ctx, store, std, batchOptions(), runID, logger)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), runID, summary, time.Since(start))
		},
	}

	cmd.Flags().IntVar(&runID, "run", 0, "Run to parse again")
	cmd.MarkFlagRequired("run")

	return cmd
}

func createBatchResultsCmd() *cobra.Command {
	var runID, limit int

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the stored results of a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			results, err := store.RunResults(cmd.Context(), runID, limit)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVar(&runID, "run", 0, "Run to show")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of lines")
	cmd.MarkFlagRequired("run")

	return cmd
}

func printSummary(w io.Writer, runID int, s batch.Summary, elapsed time.Duration) error {
	fmt.Fprintf(w, "\n=== Run %d ===\n", runID)
	fmt.Fprintf(w, "Lines:          %d\n", s.Lines)
	fmt.Fprintf(w, "Street:         %d\n", s.Street)
	fmt.Fprintf(w, "PO box:         %d\n", s.POBox)
	fmt.Fprintf(w, "Rural route:    %d\n", s.RuralRoute)
	fmt.Fprintf(w, "Unrecognized:   %d\n", s.Unrecognized)
	fmt.Fprintf(w, "With unit:      %d\n", s.WithUnit)
	fmt.Fprintf(w, "With remainder: %d\n", s.WithRemainder)
	_, err := fmt.Fprintf(w, "Tokens/line:    %.2f (sd %.2f)\nElapsed:        %s\n", s.MeanTokens, s.StdDevTokens, elapsed.Round(time.Millisecond))
	return err
}

func printResults(w io.Writer, results []batch.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tINPUT\tNORMALIZED\tREMAINDER")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.LineID, r.Street, r.Normalized, r.Parsed.Remainder)
	}
	return tw.Flush()
}
