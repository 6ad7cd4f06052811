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

package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TFMV/DeliveryLine/pkg/db"
)

// PGStore keeps runs, their lines and their results in Postgres.
type PGStore struct {
	pool   *pgxpool.Pool
	tables db.Tables
	quoted db.Tables
}

// NewPGStore returns a store over pool using the given tables.
func NewPGStore(pool *pgxpool.Pool, tables db.Tables) *PGStore {
	return &PGStore{pool: pool, tables: tables, quoted: tables.Quoted()}
}

// CreateNewRun creates a new run entry in the database and returns the run_id
func (s *PGStore) CreateNewRun(ctx context.Context, description string) (int, error) {
	var runID int
	err := s.pool.QueryRow(ctx,
		"INSERT INTO runs (description) VALUES ($1) RETURNING run_id",
		description,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to create new run: %w", err)
	}
	return runID, nil
}

// InsertFromLoadTable copies every loaded line into the source table under runID.
func (s *PGStore) InsertFromLoadTable(ctx context.Context, runID int) (int64, error) {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf(
		"INSERT INTO %s (run_id, line_id, street) SELECT $1, line_id, street FROM %s",
		s.quoted.Source, s.quoted.Load,
	), runID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lines for run %d: %w", runID, err)
	}
	return tag.RowsAffected(), nil
}

// InsertLines stores lines under runID directly, without the load table.
func (s *PGStore) InsertLines(ctx context.Context, runID int, lines []Line) error {
	ids := make([]int64, len(lines))
	streets := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
		streets[i] = l.Street
	}
	_, err := s.pool.Exec(ctx, fmt.Sprintf(
		"INSERT INTO %s (run_id, line_id, street) SELECT $1::int, * FROM UNNEST($2::bigint[], $3::text[])",
		s.quoted.Source,
	), runID, ids, streets)
	if err != nil {
		return fmt.Errorf("failed to insert lines for run %d: %w", runID, err)
	}
	return nil
}

// TruncateLoadTable empties the load table.
func (s *PGStore) TruncateLoadTable(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, "TRUNCATE TABLE "+s.quoted.Load); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", s.tables.Load, err)
	}
	return nil
}

// ClearRunResults removes earlier results for runID so a run can be repeated.
func (s *PGStore) ClearRunResults(ctx context.Context, runID int) error {
	if _, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE run_id = $1", s.quoted.Result), runID); err != nil {
		return fmt.Errorf("failed to clear results for run %d: %w", runID, err)
	}
	return nil
}

// StreamLines calls fn for every line of runID in line_id order.
func (s *PGStore) StreamLines(ctx context.Context, runID int, fn func(Line) error) error {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(
		"SELECT line_id, street FROM %s WHERE run_id = $1 ORDER BY line_id",
		s.quoted.Source,
	), runID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.ID, &line.Street); err != nil {
			return fmt.Errorf("row scan failed: %w", err)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return rows.Err()
}

// InsertResults writes one batch of results with a single statement.
func (s *PGStore) InsertResults(ctx context.Context, runID int, results []Result) error {
	cols := ParsedColumns()
	ids := make([]int64, len(results))
	normalized := make([]string, len(results))
	tokens := make([]int32, len(results))
	fields := make([][]string, len(cols))
	for i := range fields {
		fields[i] = make([]string, len(results))
	}
	for i, r := range results {
		ids[i] = r.LineID
		normalized[i] = r.Normalized
		tokens[i] = int32(r.Tokens)
		for j, f := range r.Parsed.Fields() {
			fields[j][i] = f.Value
		}
	}

	args := []interface{}{runID, ids}
	casts := []string{"$2::bigint[]"}
	for _, values := range fields {
		args = append(args, values)
		casts = append(casts, fmt.Sprintf("$%d::text[]", len(args)))
	}
	args = append(args, normalized)
	casts = append(casts, fmt.Sprintf("$%d::text[]", len(args)))
	args = append(args, tokens)
	casts = append(casts, fmt.Sprintf("$%d::int[]", len(args)))

	query := fmt.Sprintf(
		"INSERT INTO %s (run_id, line_id, %s, normalized, tokens) SELECT $1::int, * FROM UNNEST(%s)",
		s.quoted.Result,
		strings.Join(quoteAll(cols), ", "),
		strings.Join(casts, ", "),
	)
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("batch insert failed: %w", err)
	}
	return nil
}

// RunResults returns up to limit stored results of runID in line_id order.
func (s *PGStore) RunResults(ctx context.Context, runID, limit int) ([]Result, error) {
	query := fmt.Sprintf(
		"SELECT p.line_id, l.street, %s, p.normalized, p.tokens FROM %s p JOIN %s l USING (run_id, line_id) WHERE p.run_id = $1 ORDER BY p.line_id LIMIT $2",
		strings.Join(prefixAll("p.", quoteAll(ParsedColumns())), ", "),
		s.quoted.Result, s.quoted.Source,
	)
	rows, err := s.pool.Query(ctx, query, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Result, error) {
		var r Result
		p := &r.Parsed
		err := row.Scan(&r.LineID, &r.Street,
			&p.StreetNumber, &p.PreDirectional, &p.StreetName, &p.StreetType, &p.PostDirectional,
			&p.UnitType, &p.UnitNumber, &p.POBox, &p.RuralRoute, &p.Remainder,
			&r.Normalized, &r.Tokens)
		return r, err
	})
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = pgx.Identifier{n}.Sanitize()
	}
	return out
}

func prefixAll(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}
