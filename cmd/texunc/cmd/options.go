package cmd

import (
	"github.com/spf13/cobra"

	"github.com/texunc/texunc/internal/tabular"
	"github.com/texunc/texunc/internal/uncertainty"
)

var (
	maxPower     int
	minPower     int
	minDP        int
	minDPNoError int
	zeroDPInts   bool
)

// addFormatFlags registers the formatter options on cmd
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&maxPower, "max-power", uncertainty.DefaultMaxPower, "largest exponent printed without scientific notation")
	cmd.Flags().IntVar(&minPower, "min-power", -uncertainty.DefaultMaxPower, "smallest exponent printed without scientific notation (default -max-power)")
	cmd.Flags().IntVar(&minDP, "min-dp", uncertainty.DefaultMinDP, "minimum decimal places with an uncertainty")
	cmd.Flags().IntVar(&minDPNoError, "min-dp-no-error", uncertainty.DefaultMinDP, "minimum decimal places without an uncertainty (default min-dp)")
	cmd.Flags().BoolVar(&zeroDPInts, "zero-dp-ints", uncertainty.DefaultZeroDPInts, "print integers without decimals when no uncertainty is given")
}

// formatOptions merges the config file [format] section with changed flags
func formatOptions(cmd *cobra.Command) (uncertainty.Options, error) {
	f := appConfig.Format
	flags := cmd.Flags()
	if flags.Changed("max-power") {
		f.MaxPower = &maxPower
	}
	if flags.Changed("min-power") {
		f.MinPower = &minPower
	}
	if flags.Changed("min-dp") {
		f.MinDP = &minDP
	}
	if flags.Changed("min-dp-no-error") {
		f.MinDPNoError = &minDPNoError
	}
	if flags.Changed("zero-dp-ints") {
		f.ZeroDPInts = &zeroDPInts
	}

	merged := *appConfig
	merged.Format = f
	opts := merged.FormatOptions()
	return opts, opts.Validate()
}

var (
	caption      string
	label        string
	starTable    bool
	captionBelow bool
	resultLevel  string
	subs         []string
	query        string
	indexCols    int
)

// addTableFlags registers the table loading and rendering flags on cmd
func addTableFlags(cmd *cobra.Command) {
	addFormatFlags(cmd)
	cmd.Flags().StringVar(&caption, "caption", tabular.DefaultCaption, "table caption")
	cmd.Flags().StringVar(&label, "label", tabular.DefaultLabel, "table label")
	cmd.Flags().BoolVar(&starTable, "star", false, "use the table* environment")
	cmd.Flags().BoolVar(&captionBelow, "caption-below", false, "place the caption below the tabular")
	cmd.Flags().StringVar(&resultLevel, "result-level", tabular.DefaultResultLevel, "level holding value/uncertainty labels")
	cmd.Flags().StringArrayVar(&subs, "sub", nil, "replace text in the tabular, as from=to (repeatable, applied in order)")
	cmd.Flags().StringVar(&query, "query", "", "SQL query for SQLite databases")
	cmd.Flags().IntVar(&indexCols, "index-cols", 0, "leading CSV columns holding row labels (default 2)")
}
