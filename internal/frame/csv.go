// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     frame
// Description: CSV table reader
// Created:     2026-09-30
// License:     MIT
// ============================================================================

package frame

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
)

// ReadCSV reads a table whose first indexCols columns hold row labels. The
// header names the index levels and labels the data columns; empty data
// cells are missing.
func ReadCSV(r io.Reader, indexCols int) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, mdwerror.Wrap(err, "read CSV table").WithCode(mdwerror.CodeInvalidFormat)
	}
	if len(records) == 0 {
		return nil, mdwerror.New("CSV table has no header").WithCode(mdwerror.CodeInvalidFormat)
	}

	header := records[0]
	if indexCols < 1 || indexCols >= len(header) {
		return nil, mdwerror.Newf("CSV table has %d columns, cannot use %d as index", len(header), indexCols).
			WithCode(mdwerror.CodeInvalidInput)
	}

	rows := Index{Names: header[:indexCols]}
	columns := SingleIndex("", header[indexCols:]...)

	body := records[1:]
	for _, rec := range body {
		rows.Labels = append(rows.Labels, rec[:indexCols])
	}

	t := NewTable(rows, columns)
	for i, rec := range body {
		for j, raw := range rec[indexCols:] {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, mdwerror.Newf("line %d, column %q: %q is not a number", i+2, header[indexCols+j], raw).
					WithCode(mdwerror.CodeInvalidFormat)
			}
			t.Set(i, j, v)
		}
	}
	return t, nil
}
