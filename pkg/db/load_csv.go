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

package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadColumns are the columns a load file must carry.
var LoadColumns = []string{"line_id", "street"}

// CsvSource implements the pgx.CopyFromSource interface over a
// line_id,street CSV.
type CsvSource struct {
	reader  *csv.Reader
	idCol   int
	lineCol int
	values  []interface{}
	rows    int
	err     error
}

// NewCsvSource reads the header row of r and locates the load columns.
// Header names are matched case-insensitively and extra columns are ignored.
func NewCsvSource(r io.Reader) (*CsvSource, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	s := &CsvSource{reader: reader, idCol: -1, lineCol: -1}
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case LoadColumns[0]:
			s.idCol = i
		case LoadColumns[1]:
			s.lineCol = i
		}
	}
	if s.idCol < 0 || s.lineCol < 0 {
		return nil, fmt.Errorf("CSV header %q must include %s", headers, strings.Join(LoadColumns, ","))
	}
	return s, nil
}

func (s *CsvSource) Next() bool {
	if s.err != nil {
		return false
	}
	record, err := s.reader.Read()
	if errors.Is(err, io.EOF) {
		return false
	}
	if err != nil {
		s.err = fmt.Errorf("error reading CSV row %d: %w", s.rows+1, err)
		return false
	}
	s.rows++

	if len(record) <= s.idCol || len(record) <= s.lineCol {
		s.err = fmt.Errorf("CSV row %d has %d columns", s.rows, len(record))
		return false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(record[s.idCol]), 10, 64)
	if err != nil {
		s.err = fmt.Errorf("CSV row %d has an invalid line_id: %w", s.rows, err)
		return false
	}
	s.values = []interface{}{id, record[s.lineCol]}
	return true
}

func (s *CsvSource) Values() ([]interface{}, error) {
	return s.values, nil
}

func (s *CsvSource) Err() error {
	return s.err
}

// Rows returns the number of data rows read so far.
func (s *CsvSource) Rows() int {
	return s.rows
}

// LoadCSV copies the rows of r into table and returns the number copied.
func LoadCSV(ctx context.Context, pool *pgxpool.Pool, r io.Reader, table string) (int64, error) {
	src, err := NewCsvSource(r)
	if err != nil {
		return 0, err
	}

	copyCount, err := pool.CopyFrom(ctx, pgx.Identifier{table}, LoadColumns, src)
	if err != nil {
		return 0, fmt.Errorf("error copying data to database: %w", err)
	}
	return copyCount, nil
}

// LoadCSVFile opens csvFilePath and copies it into table.
func LoadCSVFile(ctx context.Context, pool *pgxpool.Pool, csvFilePath, table string) (int64, error) {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return 0, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	return LoadCSV(ctx, pool, file, table)
}
