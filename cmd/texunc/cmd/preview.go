package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	mdwlog "github.com/texunc/texunc/foundation/core/log"
	"github.com/texunc/texunc/internal/preview"
	"github.com/texunc/texunc/internal/tabular"
)

var interactive bool

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Show a formatted table in the terminal",
	Long: `Format a table file and draw it in the terminal.

With --interactive the formatting options can be tuned live:

Keys:
  + / -       widen / narrow the plain-notation exponent window
  d / D       more / fewer decimal places
  z           toggle zero decimal places for integers
  c           toggle caption position
  s           toggle table*
  l           switch between table and LaTeX source
  q / Ctrl+C  quit and print the LaTeX table`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addTableFlags(previewCmd)
	previewCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "tune options interactively")
}

func runPreview(cmd *cobra.Command, args []string) error {
	t, err := loadTable(cmd, args[0])
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}

	if !interactive {
		st, err := tabular.FormatTable(t, opts.Config)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), preview.Render(st))
		return nil
	}

	final, err := preview.Run(preview.Config{
		Title:   filepath.Base(args[0]),
		Table:   t,
		Options: opts,
	})
	if err != nil {
		return err
	}
	logger.WithName("preview").Debug("interactive preview closed",
		mdwlog.Int("max_power", final.Format.MaxPower).
			Merge(mdwlog.Int("min_power", final.Format.MinPower)).
			Merge(mdwlog.Bool("star_table", final.StarTable)).
			Merge(mdwlog.Bool("caption_above", final.CaptionAbove)))
	_, _, err = tabular.RenderTable(cmd.OutOrStdout(), t, final)
	return err
}
