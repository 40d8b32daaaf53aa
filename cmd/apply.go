package cmd

import (
	"context"
	"fmt"
	"os"

	"schema-merger/core/config"
	"schema-merger/core/database"
	"schema-merger/core/ddl"
	"schema-merger/core/logger"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scriptPath string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a diff SQL script to the configured database",
	Long: `Executes the statements of a diff script, as written by compare, one by one
against the database configured in the database section.

Application stops at the first failing statement. MySQL commits DDL
implicitly, so the statements before it stay applied; the command reports how
many succeeded.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Diff SQL script to apply (default from output.script, ./diff.sql)")
	RootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	path := flagOr(scriptPath, cfg.Output.Script)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	stmts, err := ddl.SplitStatements(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read script %s: %w", path, err)
	}
	if len(stmts) == 0 {
		l.Info("Script is empty, nothing to apply", zap.String("script", path))
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	l.Info("Applying script", zap.String("script", path), zap.Int("statements", len(stmts)))

	uiprogress.Start()
	bar := uiprogress.AddBar(len(stmts)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("Applying %d/%d: ", b.Current(), b.Total)
	})

	applied, err := database.Apply(context.Background(), db, stmts, func(int) {
		bar.Incr()
	})

	uiprogress.Stop()

	if err != nil {
		return fmt.Errorf("applied %d of %d statements: %w", applied, len(stmts), err)
	}
	l.Info("Script applied", zap.Int("statements", applied))
	return nil
}
