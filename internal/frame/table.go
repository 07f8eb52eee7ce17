// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     frame
// Description: Numeric and string tables with labeled axes
// Created:     2026-09-29
// License:     MIT
// ============================================================================

package frame

import (
	"fmt"
	"math"
)

type cell struct {
	value   float64
	present bool
}

// Table is a rows x columns grid of numbers. A cell is either present
// (possibly NaN) or missing.
type Table struct {
	Rows    Index
	Columns Index
	cells   [][]cell
}

// NewTable creates an empty table where every cell is missing.
func NewTable(rows, columns Index) *Table {
	cells := make([][]cell, rows.Len())
	for i := range cells {
		cells[i] = make([]cell, columns.Len())
	}
	return &Table{Rows: rows, Columns: columns, cells: cells}
}

// Set stores v in cell (r, c).
func (t *Table) Set(r, c int, v float64) {
	t.cells[r][c] = cell{value: v, present: true}
}

// Unset marks cell (r, c) as missing.
func (t *Table) Unset(r, c int) {
	t.cells[r][c] = cell{}
}

// At returns the value of cell (r, c) and whether it is present. Missing
// cells report NaN.
func (t *Table) At(r, c int) (float64, bool) {
	cl := t.cells[r][c]
	if !cl.present {
		return math.NaN(), false
	}
	return cl.value, true
}

// Shape returns the number of rows and columns.
func (t *Table) Shape() (int, int) {
	return t.Rows.Len(), t.Columns.Len()
}

// Transpose returns a new table with rows and columns swapped.
func (t *Table) Transpose() *Table {
	out := NewTable(t.Columns, t.Rows)
	for r := range t.cells {
		for c, cl := range t.cells[r] {
			out.cells[c][r] = cl
		}
	}
	return out
}

// Validate checks that every label tuple has one label per level.
func (t *Table) Validate() error {
	if err := validateIndex("row", t.Rows); err != nil {
		return err
	}
	return validateIndex("column", t.Columns)
}

func validateIndex(axis string, ix Index) error {
	for i, tuple := range ix.Labels {
		if len(tuple) != len(ix.Names) {
			return fmt.Errorf("%s %d has %d labels, index has %d levels", axis, i, len(tuple), len(ix.Names))
		}
	}
	return nil
}

// StringTable holds formatted cells under the same kind of labels as Table.
type StringTable struct {
	Rows    Index
	Columns Index
	Cells   [][]string
}

// NewStringTable creates a table of empty strings.
func NewStringTable(rows, columns Index) *StringTable {
	cells := make([][]string, rows.Len())
	for i := range cells {
		cells[i] = make([]string, columns.Len())
	}
	return &StringTable{Rows: rows, Columns: columns, Cells: cells}
}

// Transpose returns a new string table with rows and columns swapped.
func (s *StringTable) Transpose() *StringTable {
	out := NewStringTable(s.Columns, s.Rows)
	for r := range s.Cells {
		for c, v := range s.Cells[r] {
			out.Cells[c][r] = v
		}
	}
	return out
}

// Get returns the cell addressed by a row and a column label tuple.
func (s *StringTable) Get(row, column []string) (string, bool) {
	r := s.Rows.Find(row...)
	c := s.Columns.Find(column...)
	if r < 0 || c < 0 {
		return "", false
	}
	return s.Cells[r][c], true
}
