package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	mdwlog "github.com/texunc/texunc/foundation/core/log"
	"github.com/texunc/texunc/internal/uncertainty"
)

var formatCmd = &cobra.Command{
	Use:   "format VALUE [UNCERTAINTY]",
	Short: "Format a single value with its uncertainty",
	Long: `Format a single value with an optional uncertainty.

Both arguments accept plain numbers, "nan" and "inf". "none" marks a
missing quantity.

Examples:
  texunc format 0.0000012345 0.0000005   ->  $1.2(5)\cdot10^{-6}$
  texunc format 1234.5 0.5                ->  1,234.5(5)
  texunc format 7                         ->  7`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	addFormatFlags(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts, err := formatOptions(cmd)
	if err != nil {
		return err
	}

	var m uncertainty.Measurement
	if m.Value, err = parseQuantity(args[0]); err != nil {
		return err
	}
	if len(args) > 1 {
		if m.Uncertainty, err = parseQuantity(args[1]); err != nil {
			return err
		}
	}

	out := uncertainty.FormatMeasurement(m, opts)
	logger.Debug("formatted value", mdwlog.Fields{"input": strings.Join(args, " "), "output": out})

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// parseQuantity parses a command line number; "none" yields nil
func parseQuantity(s string) (*float64, error) {
	if strings.EqualFold(s, "none") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid number").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("input", s)
	}
	return &v, nil
}
