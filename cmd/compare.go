package cmd

import (
	"context"
	"fmt"
	"io"

	"schema-merger/core/config"
	"schema-merger/core/database"
	"schema-merger/core/logger"
	"schema-merger/core/reconcile"
	"schema-merger/core/storage"
	"schema-merger/feature/merge"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	inputA      string
	inputB      string
	outputC     string
	diffPath    string
	reportPath  string
	publishRun  bool
	applyScript bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two create XML files and build the merged file and SQL diff",
	Long: `Compares two create XML files (A and B) for incremental changes.
A is considered an incremental version of B.

The command reports tables and fields in A that are not in B and writes a
combined file C that holds all of B plus all of A, with one condition: a
table of A that is not in B is added only if its parent exists in B.

The command WILL NOT fix:
  1) Inconsistencies in field definitions like size, type, parent table
     and parent field.
  2) Tables that do not share the same parent.

Nomenclature:
  TNF: Table not found.
  TNS: The table does not have the same parent table.
  FNF: Field not found.
  FNS: The field is not the same.

If no fatal finding is reported, B can be merged into A and the diff SQL
script migrates a database built from B. Decremental changes are not taken
into account because they mean losing data between versions.

This is useful when multiple versions of an ODK survey must be combined in
one common database.`,
	Example: `  schema-merger compare -a create-v2.xml -b create-v1.xml
  schema-merger compare -a create-v2.xml -b create-v1.xml -c merged.xml -d migrate.sql --report run.yaml
  schema-merger compare -a create-v2.xml -b create-v1.xml --publish --apply`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&inputA, "inputa", "a", "", "Input create XML file A (later)")
	compareCmd.Flags().StringVarP(&inputB, "inputb", "b", "", "Input create XML file B (former)")
	compareCmd.Flags().StringVarP(&outputC, "outputc", "c", "", "Output create XML file C (default from output.merged, ./combined-create.xml)")
	compareCmd.Flags().StringVarP(&diffPath, "diff", "d", "", "Output diff SQL script (default from output.script, ./diff.sql)")
	compareCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this path")
	compareCmd.Flags().BoolVar(&publishRun, "publish", false, "Upload the outputs to the configured object storage")
	compareCmd.Flags().BoolVar(&applyScript, "apply", false, "Apply the diff script to the configured database")
	_ = compareCmd.MarkFlagRequired("inputa")
	_ = compareCmd.MarkFlagRequired("inputb")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	req := merge.Request{
		PathA:      inputA,
		PathB:      inputB,
		MergedPath: flagOr(outputC, cfg.Output.Merged),
		ScriptPath: flagOr(diffPath, cfg.Output.Script),
		ReportPath: flagOr(reportPath, cfg.Output.Report),
		Publish:    publishRun,
		Apply:      applyScript,
	}

	var pub *storage.Publisher
	if req.Publish {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		pub = storage.NewPublisher(client, cfg.Storage, l)
	}

	var db *gorm.DB
	if req.Apply {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	svc := merge.NewService(l, pub, db)
	out, err := svc.MergeFiles(context.Background(), req)
	if out != nil {
		printDiagnostics(cmd.OutOrStdout(), cmd.ErrOrStderr(), out.Result)
	}
	if err != nil {
		return err
	}

	l.Info("Comparison finished",
		zap.String("run_id", out.RunID),
		zap.Int("tables_added", out.Result.Summary.TablesAdded),
		zap.Int("fields_added", out.Result.Summary.FieldsAdded),
		zap.Int("fatal", out.Result.Summary.Fatal),
	)
	if out.Result.Failed() {
		return ErrFatalFindings
	}
	return nil
}

// printDiagnostics writes non-fatal findings to out and fatal ones to errOut,
// the latter in red when errOut is a terminal.
func printDiagnostics(out, errOut io.Writer, res *reconcile.Result) {
	fatalStyle := lipgloss.NewRenderer(errOut).NewStyle().Foreground(lipgloss.Color("9"))
	for _, d := range res.Diagnostics {
		if d.Fatal {
			fmt.Fprintln(errOut, fatalStyle.Render(d.String()))
			continue
		}
		fmt.Fprintln(out, d.String())
	}
}

func flagOr(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
