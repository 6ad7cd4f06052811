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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TFMV/DeliveryLine/internal/regress"
	"github.com/TFMV/DeliveryLine/pkg/config"
	"github.com/TFMV/DeliveryLine/pkg/lookup"
	"github.com/TFMV/DeliveryLine/pkg/utils"
	"github.com/TFMV/DeliveryLine/standardizer"
)

var (
	configPath string
	debug      bool

	cfg    *config.Config
	logger *utils.Logger
	std    *standardizer.Standardizer
)

var errRegressionFailed = errors.New("regression fixtures failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "deliveryline",
		Short:         "USPS delivery line parser",
		Long:          `Parse and normalize the street line of US mailing addresses, one line at a time or in stored batches`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Resolve(configPath)
			if err != nil {
				return err
			}
			opts := utils.LogOptions{Level: cfg.Log.Level, Development: cfg.Log.Development}
			if debug {
				opts.Level = "debug"
			}
			logger, err = utils.New("deliveryline", opts)
			if err != nil {
				return err
			}
			std = standardizer.New(lookup.Default())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config (defaults to $CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createNormalizeCmd())
	rootCmd.AddCommand(createLookupCmd())
	rootCmd.AddCommand(createRegressCmd())
	rootCmd.AddCommand(createBatchCmd())

	return rootCmd
}

// inputLines returns args, or the lines of stdin when there are none.
func inputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

func createParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [line...]",
		Short: "Parse delivery lines",
		Long:  `Parse each argument, or each line of stdin, and print its elements`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, line := range lines {
				a := std.Parse(line)
				if a.IsBlank() {
					logger.Warn("Nothing recognized in %q", line)
				} else {
					logger.Debug("Parsed %q as %s", line, a.Shape())
				}
				if asJSON {
					if err := enc.Encode(map[string]interface{}{"input": line, "parsed": a}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(out, "Input: %s\n", line)
				if err := a.Dump(out); err != nil {
					return err
				}
				fmt.Fprintf(out, "%-17s %s\n\n", "Full line:", a.FullLine())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per line")

	return cmd
}

func createNormalizeCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "normalize [line...]",
		Short: "Print the canonical form of delivery lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd, args)
			if err != nil {
				return err
			}
			if capacity == 0 {
				capacity = cfg.Normalizer.Capacity
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), std.Normalize(line, capacity))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "Maximum output length (defaults to normalizer.capacity)")

	return cmd
}

func createLookupCmd() *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up table aliases",
	}

	tables := []struct {
		use   string
		short string
		fn    func(string) (string, bool)
	}{
		{"street-type [alias...]", "Look up street type aliases", func(a string) (string, bool) {
			e, ok := std.Lookup().StreetType(a)
			return e.Canonical, ok
		}},
		{"unit-type [alias...]", "Look up unit type aliases", func(a string) (string, bool) {
			e, ok := std.Lookup().UnitType(a)
			return e.Canonical, ok
		}},
	}

	for _, t := range tables {
		t := t
		lookupCmd.AddCommand(&cobra.Command{
			Use:   t.use,
			Short: t.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printLookups(cmd.OutOrStdout(), args, t.fn)
			},
		})
	}

	return lookupCmd
}

func printLookups(w io.Writer, aliases []string, fn func(string) (string, bool)) error {
	missing := 0
	for _, alias := range aliases {
		key := strings.ToUpper(alias)
		canonical, ok := fn(key)
		if !ok {
			missing++
			fmt.Fprintf(w, "%s\t(not found)\n", key)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", key, canonical)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d aliases not found", missing, len(aliases))
	}
	return nil
}

func createRegressCmd() *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Check the parser against the regression fixtures",
		Long:  `Parse every fixture line, print each element that differs from the expected value and exit non-zero on any failure`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fixtures []regress.Fixture
			var err error
			if fixturesPath == "" {
				fixtures, err = regress.DefaultFixtures()
			} else {
				fixtures, err = regress.LoadFixtures(fixturesPath)
			}
			if err != nil {
				return err
			}

			report := regress.Run(std, fixtures)
			if err := report.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !report.Passed() {
				return errRegressionFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "YAML fixtures file (defaults to the built-in set)")

	return cmd
}
