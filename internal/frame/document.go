// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     frame
// Description: YAML and JSON table documents
// Created:     2026-09-29
// License:     MIT
// ============================================================================

package frame

import (
	"encoding/json"
	"fmt"
	"io"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a Table:
//
//	index: [method, result type]
//	column_levels: [quantity]
//	columns: [samples, calls]
//	rows:
//	  - labels: [standard, value]
//	    values: [1234.5, 1.2e6]
//	  - labels: [standard, uncertainty]
//	    values: [5, null]
//
// A column entry may be a single label or a list with one label per
// column level. null marks a missing cell.
type Document struct {
	Index        []string  `yaml:"index" json:"index"`
	ColumnLevels []string  `yaml:"column_levels,omitempty" json:"column_levels,omitempty"`
	Columns      []Labels  `yaml:"columns" json:"columns"`
	Rows         []RowSpec `yaml:"rows" json:"rows"`
}

// RowSpec is one row of a Document.
type RowSpec struct {
	Labels Labels     `yaml:"labels" json:"labels"`
	Values []*float64 `yaml:"values" json:"values"`
}

// Labels is a label tuple that may be written as a single scalar.
type Labels []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *Labels) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = Labels{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make(Labels, 0, len(value.Content))
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: labels must be scalars", n.Line)
			}
			out = append(out, n.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: labels must be a scalar or a list", value.Line)
	}
}

// UnmarshalJSON accepts a string or an array of strings.
func (l *Labels) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = Labels{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("labels must be a string or a list of strings: %w", err)
	}
	*l = many
	return nil
}

// Table converts the document into a Table.
func (d *Document) Table() (*Table, error) {
	colLevels := d.ColumnLevels
	if len(colLevels) == 0 && len(d.Columns) > 0 {
		colLevels = make([]string, len(d.Columns[0]))
	}

	columns := Index{Names: colLevels, Labels: make([][]string, len(d.Columns))}
	for i, c := range d.Columns {
		if len(c) != len(colLevels) {
			return nil, invalidDocument("column %d has %d labels, expected %d", i, len(c), len(colLevels))
		}
		columns.Labels[i] = []string(c)
	}

	rows := Index{Names: d.Index, Labels: make([][]string, len(d.Rows))}
	for i, r := range d.Rows {
		if len(r.Labels) != len(d.Index) {
			return nil, invalidDocument("row %d has %d labels, index has %d levels", i, len(r.Labels), len(d.Index))
		}
		if len(r.Values) != len(d.Columns) {
			return nil, invalidDocument("row %d has %d values, expected %d", i, len(r.Values), len(d.Columns))
		}
		rows.Labels[i] = []string(r.Labels)
	}

	t := NewTable(rows, columns)
	for i, r := range d.Rows {
		for j, v := range r.Values {
			if v != nil {
				t.Set(i, j, *v)
			}
		}
	}
	return t, nil
}

// ReadYAML decodes a YAML Document from r.
func ReadYAML(r io.Reader) (*Table, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, mdwerror.Wrap(err, "decode YAML table").WithCode(mdwerror.CodeInvalidFormat)
	}
	return d.Table()
}

// ReadJSON decodes a JSON Document from r.
func ReadJSON(r io.Reader) (*Table, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, mdwerror.Wrap(err, "decode JSON table").WithCode(mdwerror.CodeInvalidFormat)
	}
	return d.Table()
}

func invalidDocument(format string, args ...interface{}) error {
	return mdwerror.Newf(format, args...).WithCode(mdwerror.CodeInvalidFormat)
}
