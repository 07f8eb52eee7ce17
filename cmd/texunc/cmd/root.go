package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/texunc/texunc/foundation/core/log"
	"github.com/texunc/texunc/pkg/core/config"
	"github.com/texunc/texunc/pkg/core/logging"
	"github.com/texunc/texunc/pkg/core/version"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "texunc",
	Short: "Typeset values with uncertainties for LaTeX",
	Long: `texunc formats a measurement and its uncertainty as 1.234(5)\cdot10^{-6}
and applies that formatting across labeled tables, printing ready to paste
LaTeX table environments.

Commands:
  format   - format a single value
  table    - format a table file and print the LaTeX table
  preview  - show a formatted table in the terminal`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	// usage errors happen before setup creates the logger
	if logger != nil {
		logger.LogError(err)
	} else {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfig+" or ./texunc.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads the configuration and creates the run logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.DefaultLoggerConfig(version.Name)
	lc.Level = appConfig.General.LogLevel
	lc.Format = appConfig.General.LogFormat
	if logLevel != "" {
		lc.Level = logLevel
	}
	if logFormat != "" {
		lc.Format = logFormat
	}
	if verbose {
		lc.Level = "debug"
	}
	lc.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(lc)

	if appConfig.Path != "" {
		logger.Debug("configuration loaded", mdwlog.Fields{"path": appConfig.Path})
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
