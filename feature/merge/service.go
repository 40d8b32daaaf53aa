package merge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"schema-merger/core/database"
	"schema-merger/core/reconcile"
	"schema-merger/core/schema"
	"schema-merger/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrSameInput is returned when A and B name the same file.
	ErrSameInput = errors.New("input files A and B are the same")
	// ErrInputNotFound is returned when an input file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrPublishingDisabled is returned when publishing is requested without storage.
	ErrPublishingDisabled = errors.New("publishing requested but no storage is configured")
	// ErrDatabaseUnavailable is returned when applying is requested without a database.
	ErrDatabaseUnavailable = errors.New("apply requested but no database is configured")
)

// Request describes one file based merge run.
type Request struct {
	// PathA is the newer create XML.
	PathA string
	// PathB is the former create XML, the base of the merge.
	PathB string
	// MergedPath receives the merged document.
	MergedPath string
	// ScriptPath receives the SQL migration script.
	ScriptPath string
	// ReportPath receives the YAML run report. Empty skips the report.
	ReportPath string
	// Publish uploads the outputs to object storage.
	Publish bool
	// Apply executes the script against the configured database.
	Apply bool
}

// Outcome holds what a merge run produced.
type Outcome struct {
	// RunID identifies the run in reports and published object names.
	RunID string
	// Result holds the diagnostics, statements and merged document.
	Result *reconcile.Result
	// Published lists the object names uploaded to storage.
	Published []string
	// Applied counts the statements executed against the database.
	Applied int
	// ApplySkipped is set when applying was requested but fatal findings prevented it.
	ApplySkipped bool
}

// Service runs merges.
type Service struct {
	logger    *zap.Logger
	publisher *storage.Publisher
	db        *gorm.DB
	progress  func(applied int)
}

// NewService creates a merge service. publisher and db are optional and only
// needed for publishing and applying.
func NewService(logger *zap.Logger, publisher *storage.Publisher, db *gorm.DB) *Service {
	return &Service{logger: logger, publisher: publisher, db: db}
}

// SetProgress sets a callback invoked after each applied statement.
func (s *Service) SetProgress(fn func(applied int)) {
	s.progress = fn
}

// MergeFiles compares the files of req, writes the merged document, the
// script and the optional report, then publishes and applies when asked.
// Outputs are written even when the comparison has fatal findings; callers
// check Outcome.Result.Failed.
func (s *Service) MergeFiles(ctx context.Context, req Request) (*Outcome, error) {
	if err := checkInputs(req.PathA, req.PathB); err != nil {
		return nil, err
	}

	a, err := schema.Load(req.PathA)
	if err != nil {
		return nil, fmt.Errorf("input A: %w", err)
	}
	b, err := schema.Load(req.PathB)
	if err != nil {
		return nil, fmt.Errorf("input B: %w", err)
	}

	out := &Outcome{RunID: uuid.NewString()}
	l := s.logger.With(zap.String("run_id", out.RunID))

	session := reconcile.NewSession(a, b, reconcile.WithLogger(l))
	out.Result = session.Run()

	merged, err := out.Result.Merged.Bytes()
	if err != nil {
		return out, fmt.Errorf("encoding merged document: %w", err)
	}
	// Both outputs are attempted; each failure is reported.
	var writeErrs []error
	if err := os.WriteFile(req.MergedPath, merged, 0o644); err != nil {
		writeErrs = append(writeErrs, fmt.Errorf("writing merged document: %w", err))
	}
	if err := session.Script().WriteFile(req.ScriptPath); err != nil {
		writeErrs = append(writeErrs, fmt.Errorf("writing script: %w", err))
	}
	if len(writeErrs) > 0 {
		return out, errors.Join(writeErrs...)
	}
	l.Info("Outputs written",
		zap.String("merged", req.MergedPath),
		zap.String("script", req.ScriptPath),
		zap.Int("statements", out.Result.Summary.Statements),
	)

	var report []byte
	if req.ReportPath != "" {
		report, err = NewReport(out.RunID, req.PathA, req.PathB, out.Result).YAML()
		if err != nil {
			return out, fmt.Errorf("encoding report: %w", err)
		}
		if err := os.WriteFile(req.ReportPath, report, 0o644); err != nil {
			return out, fmt.Errorf("writing report: %w", err)
		}
	}

	if req.Publish {
		if s.publisher == nil {
			return out, ErrPublishingDisabled
		}
		artifacts := []storage.Artifact{
			{Name: filepath.Base(req.MergedPath), ContentType: "application/xml", Data: merged},
			{Name: filepath.Base(req.ScriptPath), ContentType: "application/sql", Data: []byte(session.Script().String())},
		}
		if report != nil {
			artifacts = append(artifacts, storage.Artifact{Name: filepath.Base(req.ReportPath), ContentType: "application/yaml", Data: report})
		}
		out.Published, err = s.publisher.Publish(ctx, out.RunID, artifacts)
		if err != nil {
			return out, fmt.Errorf("publishing run: %w", err)
		}
		l.Info("Run published", zap.Strings("objects", out.Published))
	}

	if req.Apply {
		if s.db == nil {
			return out, ErrDatabaseUnavailable
		}
		if out.Result.Failed() {
			l.Warn("Script not applied because of fatal findings", zap.Int("fatal", out.Result.Summary.Fatal))
			out.ApplySkipped = true
			return out, nil
		}
		out.Applied, err = database.Apply(ctx, s.db, out.Result.Statements, s.progress)
		if err != nil {
			return out, fmt.Errorf("applying script: %w", err)
		}
		l.Info("Script applied", zap.Int("statements", out.Applied))
	}

	return out, nil
}

// MergeDocuments compares two in-memory documents. It never touches the
// file system.
func (s *Service) MergeDocuments(a, b []byte, l *zap.Logger) (*reconcile.Result, error) {
	docA, err := schema.ParseBytes(a)
	if err != nil {
		return nil, fmt.Errorf("input A: %w", err)
	}
	docB, err := schema.ParseBytes(b)
	if err != nil {
		return nil, fmt.Errorf("input B: %w", err)
	}
	if l == nil {
		l = s.logger
	}
	return reconcile.Compare(docA, docB, reconcile.WithLogger(l)), nil
}

func checkInputs(pathA, pathB string) error {
	if pathA == pathB || sameFile(pathA, pathB) {
		return ErrSameInput
	}
	for _, in := range []struct{ label, path string }{{"A", pathA}, {"B", pathB}} {
		if _, err := os.Stat(in.path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("input %s %s: %w", in.label, in.path, ErrInputNotFound)
			}
			return fmt.Errorf("input %s: %w", in.label, err)
		}
	}
	return nil
}

func sameFile(pathA, pathB string) bool {
	absA, errA := filepath.Abs(pathA)
	absB, errB := filepath.Abs(pathB)
	return errA == nil && errB == nil && absA == absB
}
