// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     frame
// Description: SQLite table source
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package frame

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	mdwerror "github.com/texunc/texunc/foundation/core/error"
)

// SQLiteSource reads tables from the result sets of SQL queries.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the database at path read-only.
func OpenSQLite(path string) (*SQLiteSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, mdwerror.Wrap(err, "open database").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, mdwerror.Wrap(err, "open database").WithCode(mdwerror.CodeDatabaseError)
	}
	return &SQLiteSource{db: db}, nil
}

// NewSQLiteSource wraps an already open database.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Close closes the database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Query runs query and turns the result set into a Table. Text columns
// become row index levels named after the result columns, in query order;
// numeric columns become data columns. NULL numbers are missing cells.
func (s *SQLiteSource) Query(ctx context.Context, query string, args ...interface{}) (*Table, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mdwerror.Wrap(err, "query table").WithCode(mdwerror.CodeDatabaseError)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, mdwerror.Wrap(err, "read result columns").WithCode(mdwerror.CodeDatabaseError)
	}

	var data [][]interface{}
	for rows.Next() {
		vals := make([]interface{}, len(names))
		ptrs := make([]interface{}, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, mdwerror.Wrap(err, "scan row").WithCode(mdwerror.CodeDatabaseError)
		}
		data = append(data, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "iterate rows").WithCode(mdwerror.CodeDatabaseError)
	}

	isLabel, err := classifyColumns(names, data)
	if err != nil {
		return nil, err
	}

	var labelCols, valueCols []int
	for i := range names {
		if isLabel[i] {
			labelCols = append(labelCols, i)
		} else {
			valueCols = append(valueCols, i)
		}
	}

	rowIndex := Index{Names: pick(names, labelCols), Labels: make([][]string, len(data))}
	for r, vals := range data {
		tuple := make([]string, len(labelCols))
		for k, c := range labelCols {
			tuple[k] = labelString(vals[c])
		}
		rowIndex.Labels[r] = tuple
	}

	t := NewTable(rowIndex, SingleIndex("", pick(names, valueCols)...))
	for r, vals := range data {
		for k, c := range valueCols {
			switch v := vals[c].(type) {
			case int64:
				t.Set(r, k, float64(v))
			case float64:
				t.Set(r, k, v)
			}
		}
	}
	return t, nil
}

// classifyColumns marks columns whose non-NULL values are all text.
func classifyColumns(names []string, data [][]interface{}) ([]bool, error) {
	isLabel := make([]bool, len(names))
	for c, name := range names {
		text, numeric := 0, 0
		for _, vals := range data {
			switch vals[c].(type) {
			case nil:
			case string, []byte:
				text++
			case int64, float64:
				numeric++
			default:
				return nil, mdwerror.Newf("column %q has unsupported type %T", name, vals[c]).
					WithCode(mdwerror.CodeInvalidFormat)
			}
		}
		if text > 0 && numeric > 0 {
			return nil, mdwerror.Newf("column %q mixes text and numbers", name).
				WithCode(mdwerror.CodeInvalidFormat)
		}
		isLabel[c] = text > 0
	}
	return isLabel, nil
}

func labelString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

func pick(names []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = names[j]
	}
	return out
}
