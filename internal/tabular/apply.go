// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     tabular
// Description: Applies the uncertainty formatter across labeled tables
// Created:     2026-10-02
// License:     MIT
// ============================================================================

// Package tabular pairs the "value" and "uncertainty" entries of a labeled
// table, formats every pair and renders the result as a LaTeX table.
package tabular

import (
	"sort"
	"strings"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	"github.com/texunc/texunc/internal/frame"
	"github.com/texunc/texunc/internal/uncertainty"
)

const (
	// DefaultResultLevel names the level holding "value"/"uncertainty".
	DefaultResultLevel = "result type"

	ValueLabel       = "value"
	UncertaintyLabel = "uncertainty"
)

// Config controls FormatTable.
type Config struct {
	// ResultLevel is looked up on the row index first, then on the
	// column index. Empty means DefaultResultLevel.
	ResultLevel string

	Format uncertainty.Options
}

// DefaultConfig returns the default result level and formatting options.
func DefaultConfig() Config {
	return Config{
		ResultLevel: DefaultResultLevel,
		Format:      uncertainty.DefaultOptions(),
	}
}

// FormatTable formats every measurement of t. The output has t's labels
// minus the result level, in t's order. Cells whose value and uncertainty
// are both missing stay empty.
func FormatTable(t *frame.Table, cfg Config) (*frame.StringTable, error) {
	name := cfg.ResultLevel
	if name == "" {
		name = DefaultResultLevel
	}

	if err := t.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "malformed table").WithCode(mdwerror.CodeContractViolation)
	}

	if lvl := t.Rows.Level(name); lvl >= 0 {
		return formatRows(t, lvl, cfg.Format, rowAxis, columnAxis)
	}
	if lvl := t.Columns.Level(name); lvl >= 0 {
		st, err := formatRows(t.Transpose(), lvl, cfg.Format, columnAxis, rowAxis)
		if err != nil {
			return nil, err
		}
		return st.Transpose(), nil
	}

	return nil, mdwerror.Newf("table has no %q level", name).
		WithCode(mdwerror.CodeContractViolation).
		WithDetail("row_levels", strings.Join(t.Rows.Names, ", ")).
		WithDetail("column_levels", strings.Join(t.Columns.Names, ", "))
}

const (
	rowAxis    = "row"
	columnAxis = "column"
)

// formatRows handles a result level on the row index. groupAxis and
// crossAxis name the original axes of t's rows and columns, which differ
// from "row" and "column" when t is a transposed table.
func formatRows(t *frame.Table, lvl int, opts uncertainty.Options, groupAxis, crossAxis string) (*frame.StringTable, error) {
	rest := t.Rows.Drop(lvl)
	groups := rest.Groups()
	out := frame.NewStringTable(rest.Unique(), t.Columns)

	for g, members := range groups {
		vRow, uRow, err := pairRows(t.Rows, lvl, members)
		if err != nil {
			return nil, err.WithDetail(groupAxis, strings.Join(rest.Labels[members[0]], ", "))
		}

		for c := range out.Columns.Labels {
			m, ok, err := measurement(t, vRow, uRow, c)
			if err != nil {
				return nil, err.
					WithDetail(groupAxis, strings.Join(rest.Labels[members[0]], ", ")).
					WithDetail(crossAxis, strings.Join(t.Columns.Labels[c], ", "))
			}
			if ok {
				out.Cells[g][c] = uncertainty.FormatMeasurement(m, opts)
			}
		}
	}
	return out, nil
}

// pairRows returns the rows holding the value and the uncertainty of one
// group. uRow is -1 when the group has no uncertainty entry.
func pairRows(rows frame.Index, lvl int, members []int) (vRow, uRow int, err *mdwerror.Error) {
	kinds := make([]string, len(members))
	for i, m := range members {
		kinds[i] = rows.Labels[m][lvl]
	}

	switch len(members) {
	case 1:
		if kinds[0] != ValueLabel {
			return 0, 0, labelSetError(kinds)
		}
		return members[0], -1, nil
	case 2:
		sorted := append([]string(nil), kinds...)
		sort.Strings(sorted)
		if sorted[0] != UncertaintyLabel || sorted[1] != ValueLabel {
			return 0, 0, labelSetError(kinds)
		}
		if kinds[0] == ValueLabel {
			return members[0], members[1], nil
		}
		return members[1], members[0], nil
	default:
		return 0, 0, mdwerror.Newf("measurement has %d entries, expected 1 or 2", len(members)).
			WithCode(mdwerror.CodeContractViolation)
	}
}

// measurement reads one cell pair. ok is false when neither cell is present.
func measurement(t *frame.Table, vRow, uRow, c int) (uncertainty.Measurement, bool, *mdwerror.Error) {
	var m uncertainty.Measurement
	if v, ok := t.At(vRow, c); ok {
		m.Value = uncertainty.Of(v)
	}
	if uRow >= 0 {
		if u, ok := t.At(uRow, c); ok {
			m.Uncertainty = uncertainty.Of(u)
		}
	}

	switch {
	case m.Value == nil && m.Uncertainty == nil:
		return m, false, nil
	case m.Value == nil:
		return m, false, labelSetError([]string{UncertaintyLabel})
	}
	return m, true, nil
}

func labelSetError(kinds []string) *mdwerror.Error {
	return mdwerror.Newf("measurement has labels [%s], expected [value] or [value uncertainty]",
		strings.Join(kinds, " ")).
		WithCode(mdwerror.CodeContractViolation)
}
