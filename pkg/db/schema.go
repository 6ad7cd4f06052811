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
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TFMV/DeliveryLine/pkg/config"
)

//go:embed schema.sql
var schemaSQL string

var schemaTemplate = template.Must(template.New("schema").Parse(schemaSQL))

// Tables names the tables a batch run reads and writes.
type Tables struct {
	Load   string
	Source string
	Result string
}

// TablesFromConfig picks the table names out of cfg.
func TablesFromConfig(cfg *config.Config) Tables {
	return Tables{
		Load:   cfg.DBCreds.LoadTable,
		Source: cfg.Batch.SourceTable,
		Result: cfg.Batch.ResultTable,
	}
}

// Quoted returns the same tables as sanitized SQL identifiers.
func (t Tables) Quoted() Tables {
	return Tables{
		Load:   pgx.Identifier{t.Load}.Sanitize(),
		Source: pgx.Identifier{t.Source}.Sanitize(),
		Result: pgx.Identifier{t.Result}.Sanitize(),
	}
}

// SchemaSQL renders the DDL for t.
func SchemaSQL(t Tables) (string, error) {
	if t.Load == "" || t.Source == "" || t.Result == "" {
		return "", fmt.Errorf("table names must not be empty: %+v", t)
	}
	var buf bytes.Buffer
	if err := schemaTemplate.Execute(&buf, t.Quoted()); err != nil {
		return "", fmt.Errorf("failed to render schema: %w", err)
	}
	return buf.String(), nil
}

// EnsureSchema creates any missing tables.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, t Tables) error {
	ddl, err := SchemaSQL(t)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
