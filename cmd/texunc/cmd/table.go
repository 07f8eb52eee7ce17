package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	mdwlog "github.com/texunc/texunc/foundation/core/log"
	"github.com/texunc/texunc/internal/frame"
	"github.com/texunc/texunc/internal/tabular"
)

var tableCmd = &cobra.Command{
	Use:   "table FILE",
	Short: "Format a table file and print a LaTeX table",
	Long: `Read a labeled table and print it as a LaTeX table environment.

FILE may be YAML (.yaml, .yml), JSON (.json), CSV (.csv) or a SQLite
database (.db, .sqlite, .sqlite3, requires --query). One row or column
level, "result type" by default, must label entries as "value" or
"uncertainty".

Examples:
  texunc table results.yaml --caption "Run times." --label tab:runs
  texunc table runs.db --query "SELECT method, kind AS 'result type', t FROM runs"
  texunc table results.csv --sub standard=Standard --star`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	addTableFlags(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	t, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("render table").WithField("file", args[0])
	_, st, err := tabular.RenderTable(cmd.OutOrStdout(), t, opts)
	timer.Stop()
	if err != nil {
		return err
	}

	logger.Info("table rendered", mdwlog.String("file", args[0]).
		Merge(mdwlog.Int("rows", st.Rows.Len())).
		Merge(mdwlog.Int("columns", st.Columns.Len())))
	return nil
}

// loadTable reads the table file named on the command line
func loadTable(cmd *cobra.Command, path string) (*frame.Table, error) {
	lo := frame.LoadOptions{
		Query:        query,
		IndexColumns: appConfig.Table.IndexColumns,
	}
	if cmd.Flags().Changed("index-cols") {
		lo.IndexColumns = indexCols
	}

	t, err := frame.Load(cmd.Context(), path, lo)
	if err != nil {
		return nil, err
	}
	if logger.IsLevelEnabled(mdwlog.LevelDebug) {
		rows, cols := t.Shape()
		logger.Debug("table loaded", mdwlog.String("file", path).
			Merge(mdwlog.Int("rows", rows)).
			Merge(mdwlog.Int("columns", cols)))
	}
	return t, nil
}

// renderOptions merges the config file with changed flags
func renderOptions(cmd *cobra.Command) (tabular.RenderOptions, error) {
	r := appConfig.RenderOptions()

	format, err := formatOptions(cmd)
	if err != nil {
		return r, err
	}
	r.Format = format

	flags := cmd.Flags()
	if flags.Changed("caption") {
		r.Caption = caption
	}
	if flags.Changed("label") {
		r.Label = label
	}
	if flags.Changed("star") {
		r.StarTable = starTable
	}
	if flags.Changed("caption-below") {
		r.CaptionAbove = !captionBelow
	}
	if flags.Changed("result-level") {
		r.ResultLevel = resultLevel
	}

	for _, s := range subs {
		from, to, ok := strings.Cut(s, "=")
		if !ok || from == "" {
			return r, mdwerror.Newf("substitution %q must have the form from=to", s).
				WithCode(mdwerror.CodeInvalidInput)
		}
		r.Substitutions = append(r.Substitutions, tabular.Substitution{Old: from, New: to})
	}
	return r, nil
}
