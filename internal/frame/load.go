// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     frame
// Description: Loads tables from files by extension
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package frame

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
)

// DefaultIndexColumns is the number of leading CSV columns used as row labels.
const DefaultIndexColumns = 2

// LoadOptions controls how Load reads a table file.
type LoadOptions struct {
	// Query is required for SQLite databases.
	Query string

	// IndexColumns is the number of leading CSV columns holding row labels.
	IndexColumns int
}

// Load reads the table stored at path. The format follows the extension:
// .yaml/.yml, .json, .csv, or .db/.sqlite/.sqlite3.
func Load(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".db", ".sqlite", ".sqlite3":
		if opts.Query == "" {
			return nil, mdwerror.New("a query is required to read a SQLite table").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("path", path)
		}
		src, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Query(ctx, opts.Query)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "open table").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path)
	}
	defer f.Close()

	var t *Table
	switch ext {
	case ".yaml", ".yml":
		t, err = ReadYAML(f)
	case ".json":
		t, err = ReadJSON(f)
	case ".csv":
		n := opts.IndexColumns
		if n == 0 {
			n = DefaultIndexColumns
		}
		t, err = ReadCSV(f, n)
	default:
		return nil, mdwerror.Newf("unsupported table format %q", ext).
			WithCode(mdwerror.CodeInvalidFormat).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "load "+filepath.Base(path))
	}
	return t, nil
}
