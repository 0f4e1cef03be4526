// sudoku shows an interactive 9x9 board in a window.
//
// Usage:
//
//	sudoku                    - Open the board window
//	sudoku run                - Same as sudoku
//	sudoku layout             - Print the draw calls of one frame
//	sudoku config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - View configuration YAML
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sudoku/config"
	"sudoku/controller"
	"sudoku/engine"
	"sudoku/ui"
	"sudoku/view"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku board viewer",
	Long: `Opens a 9x9 Sudoku board. Click a cell to select it, press Escape to close.

Examples:
  sudoku
  sudoku --config ./my-view.yaml
  sudoku layout --press 100,150
  sudoku config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to view config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the board window",
	Long:  `Opens the board window. Click a cell to select it, press Escape to close.`,
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sudoku",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// setup loads the configuration and builds the board, controller and view.
func setup() (config.Config, *controller.Controller, *view.View, *log.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	logger.Debug("config loaded", "path", flagConfig)

	c := controller.New(engine.New(), logger)
	v := view.New(cfg.ViewSettings())
	return cfg, c, v, logger, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, c, v, logger, err := setup()
	if err != nil {
		return err
	}

	ui.New(cfg.Window, v, c, logger).Run()
	return nil
}
