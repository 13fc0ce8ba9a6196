// Package main provides the CLI entry point for sheetdump.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdump-go/internal/config"
	"github.com/ukaji3/sheetdump-go/internal/logger"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/parser"
)

type flags struct {
	configPath string
	reader     string
	disabled   []string
	dateLayout string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "sheetdump [input.xlsx]",
		Short: "Print every sheet of a spreadsheet as tab-separated text",
		Long: `sheetdump opens a workbook, lists its sheets and prints every row
with cells separated by tabs. If the primary reader is unavailable it falls
back to an alternate reader that prints each sheet as a table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	rootCmd.Flags().StringVarP(&f.reader, "reader", "r", sheetdump.ReaderAuto,
		fmt.Sprintf("Reader: %s, %s", sheetdump.ReaderAuto, strings.Join(parser.Names(), ", ")))
	rootCmd.Flags().StringSliceVar(&f.disabled, "disable", nil, "Readers to treat as unavailable")
	rootCmd.Flags().StringVar(&f.dateLayout, "date-layout", "", "Go time layout for date cells")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level for stderr diagnostics")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	// Argument errors are reported above; runtime errors need no usage text.
	cmd.SilenceUsage = true

	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return err
	}

	// Flags override the config file
	if cmd.Flags().Changed("reader") {
		cfg.Reader.Name = f.reader
	}
	if cmd.Flags().Changed("disable") {
		cfg.Reader.Disabled = f.disabled
	}
	if f.dateLayout != "" {
		cfg.Output.DateLayout = f.dateLayout
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Input.Path == "" {
		return errors.New("no input file: pass a path or set input.path in the config file")
	}

	if err := sheetdump.Run(cmd.OutOrStdout(), cfg.Input.Path, cfg.Options()); err != nil {
		logger.Error("Dump failed", "path", cfg.Input.Path, "error", err)
		return err
	}
	return nil
}
