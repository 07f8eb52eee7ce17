// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     frame
// Description: Multi-level label index for table rows and columns
// Created:     2026-09-29
// License:     MIT
// ============================================================================

// Package frame holds labeled numeric tables and reads them from YAML,
// JSON, CSV and SQLite sources.
package frame

import (
	"strings"
)

// keySep joins label tuples into map keys; it cannot occur in YAML/CSV text
// labels read by this package.
const keySep = "\x1f"

// Index labels one axis of a table. Every entry of Labels is a tuple with
// one label per level in Names. Level names may be empty.
type Index struct {
	Names  []string
	Labels [][]string
}

// NewIndex builds an index with the given level names.
func NewIndex(names []string, labels ...[]string) Index {
	return Index{Names: names, Labels: labels}
}

// SingleIndex builds a one-level index from plain labels.
func SingleIndex(name string, labels ...string) Index {
	ix := Index{Names: []string{name}, Labels: make([][]string, len(labels))}
	for i, l := range labels {
		ix.Labels[i] = []string{l}
	}
	return ix
}

// Len returns the number of entries.
func (ix Index) Len() int {
	return len(ix.Labels)
}

// Levels returns the number of levels.
func (ix Index) Levels() int {
	return len(ix.Names)
}

// Level returns the position of the named level, or -1.
func (ix Index) Level(name string) int {
	for i, n := range ix.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Key returns a comparable key for entry i.
func (ix Index) Key(i int) string {
	return strings.Join(ix.Labels[i], keySep)
}

// Find returns the position of the first entry equal to tuple, or -1.
func (ix Index) Find(tuple ...string) int {
	want := strings.Join(tuple, keySep)
	for i := range ix.Labels {
		if ix.Key(i) == want {
			return i
		}
	}
	return -1
}

// Drop returns a copy of the index without the given level. Entries keep
// their position, so the result may contain duplicates.
func (ix Index) Drop(level int) Index {
	names := make([]string, 0, len(ix.Names)-1)
	names = append(names, ix.Names[:level]...)
	names = append(names, ix.Names[level+1:]...)

	labels := make([][]string, len(ix.Labels))
	for i, tuple := range ix.Labels {
		t := make([]string, 0, len(tuple)-1)
		t = append(t, tuple[:level]...)
		t = append(t, tuple[level+1:]...)
		labels[i] = t
	}
	return Index{Names: names, Labels: labels}
}

// Unique returns the distinct entries in order of first appearance.
func (ix Index) Unique() Index {
	seen := make(map[string]bool, len(ix.Labels))
	out := Index{Names: append([]string(nil), ix.Names...)}
	for i, tuple := range ix.Labels {
		k := ix.Key(i)
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Labels = append(out.Labels, append([]string(nil), tuple...))
	}
	return out
}

// Groups partitions entry positions by their labels, in order of first
// appearance of each distinct tuple.
func (ix Index) Groups() [][]int {
	pos := make(map[string]int, len(ix.Labels))
	var groups [][]int
	for i := range ix.Labels {
		k := ix.Key(i)
		g, ok := pos[k]
		if !ok {
			g = len(groups)
			pos[k] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// LevelValues returns the labels of one level, in entry order.
func (ix Index) LevelValues(level int) []string {
	out := make([]string, len(ix.Labels))
	for i, tuple := range ix.Labels {
		out[i] = tuple[level]
	}
	return out
}
