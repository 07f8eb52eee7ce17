package tabular

import (
	"io"
	"strings"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	"github.com/texunc/texunc/internal/frame"
	"github.com/texunc/texunc/internal/latex"
)

const (
	DefaultCaption = "Caption here."
	DefaultLabel   = "tab:tbc"
)

// Substitution replaces every occurrence of Old with New in the tabular
// body, e.g. to turn a column key into a display name.
type Substitution struct {
	Old string
	New string
}

// RenderOptions controls RenderTable.
type RenderOptions struct {
	Config

	// Substitutions are applied in order, so overlapping keys are
	// resolved by position.
	Substitutions []Substitution

	Caption      string
	Label        string
	StarTable    bool
	CaptionAbove bool
}

// DefaultRenderOptions returns the options used when nothing is configured.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Config:       DefaultConfig(),
		Caption:      DefaultCaption,
		Label:        DefaultLabel,
		CaptionAbove: true,
	}
}

// RenderTable formats t, serializes it as a LaTeX table environment and
// writes it to w preceded by an empty line. It returns the environment
// text and the formatted table. w may be nil.
func RenderTable(w io.Writer, t *frame.Table, opts RenderOptions) (string, *frame.StringTable, error) {
	st, err := FormatTable(t, opts.Config)
	if err != nil {
		return "", nil, err
	}

	body := Substitute(latex.Tabular(st), opts.Substitutions)

	env := latex.Environment{
		Caption:      opts.Caption,
		Label:        opts.Label,
		Star:         opts.StarTable,
		CaptionAbove: opts.CaptionAbove,
	}
	out := env.Wrap(body)

	if w != nil {
		if _, err := io.WriteString(w, "\n"+out); err != nil {
			return "", nil, mdwerror.Wrap(err, "write table").WithCode(mdwerror.CodeInternal)
		}
	}
	return out, st, nil
}

// Substitute applies subs to s in order.
func Substitute(s string, subs []Substitution) string {
	for _, sub := range subs {
		if sub.Old == "" {
			continue
		}
		s = strings.ReplaceAll(s, sub.Old, sub.New)
	}
	return s
}
