package cmd

import (
	"errors"
	"fmt"
	"os"

	"schema-merger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrFatalFindings is returned when the comparison found differences the
// merge cannot resolve.
var ErrFatalFindings = errors.New("fatal differences found, B cannot be merged into A")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "schema-merger",
	Short: "Compare and merge create XML schema files",
	Long: `schema-merger compares two create XML files for incremental changes,
produces a combined create XML and a SQL script migrating a database built
from the former file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config prints readable timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
