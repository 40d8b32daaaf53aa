package reconcile

import (
	"fmt"

	"schema-merger/core/ddl"
	"schema-merger/core/schema"

	"go.uber.org/zap"
)

// Session holds the state of one comparison run: the two documents, the name
// indices of B, the script being built and the findings so far.
type Session struct {
	a, b   *schema.Document
	script *ddl.Script
	logger *zap.Logger

	lookups *schema.TableIndex
	tables  *schema.TableIndex

	diagnostics []Diagnostic
	summary     Summary
	done        bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for progress messages.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScript makes the session append to an existing script, continuing its
// identifier sequence.
func WithScript(script *ddl.Script) Option {
	return func(s *Session) {
		if script != nil {
			s.script = script
		}
	}
}

// NewSession prepares a comparison of a (newer) against b (older). b is
// mutated by Run.
func NewSession(a, b *schema.Document, opts ...Option) *Session {
	s := &Session{
		a:      a,
		b:      b,
		script: ddl.NewScript(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lookups = schema.NewTableIndex(b, b.LookupSection())
	s.tables = schema.NewTableIndex(b, b.DataSection())
	return s
}

// Compare runs a full comparison of a against b and returns its result.
func Compare(a, b *schema.Document, opts ...Option) *Result {
	return NewSession(a, b, opts...).Run()
}

// Run compares the lookup tables and then the data tables. Calling Run again
// returns the result of the first run.
func (s *Session) Run() *Result {
	if !s.done {
		s.done = true

		if len(s.a.Children(s.a.LookupSection())) > 0 && len(s.b.Children(s.b.LookupSection())) > 0 {
			s.logger.Info("Comparing lookup tables")
		}
		s.reconcileLookupTables()

		if len(s.a.Children(s.a.DataSection())) > 0 && len(s.b.Children(s.b.DataSection())) > 0 {
			s.logger.Info("Comparing tables")
		}
		for _, table := range s.a.Tables(s.a.DataSection()) {
			s.reconcileTable(table)
		}

		s.logger.Debug("Comparison finished",
			zap.Int("diagnostics", len(s.diagnostics)),
			zap.Int("fatal", s.summary.Fatal),
			zap.Int("statements", s.script.Len()),
		)
	}

	summary := s.summary
	summary.Statements = s.script.Len()
	return &Result{
		Diagnostics: s.diagnostics,
		Statements:  s.script.Statements(),
		Summary:     summary,
		Merged:      s.b,
	}
}

// Script returns the script the session appends to.
func (s *Session) Script() *ddl.Script {
	return s.script
}

func (s *Session) record(kind Kind, fatal bool, section Section, table, field, format string, args ...any) {
	d := Diagnostic{
		Kind:    kind,
		Fatal:   fatal,
		Section: section,
		Table:   table,
		Field:   field,
		Message: string(kind) + ":" + fmt.Sprintf(format, args...),
	}
	s.diagnostics = append(s.diagnostics, d)

	switch kind {
	case KindTableNotFound:
		s.summary.TablesNotFound++
	case KindTableParent:
		s.summary.ParentMismatches++
	case KindFieldNotFound:
		s.summary.FieldsNotFound++
	case KindFieldMismatch:
		s.summary.FieldMismatches++
	}
	if fatal {
		s.summary.Fatal++
	}

	s.logger.Debug("Diagnostic recorded",
		zap.String("kind", string(kind)),
		zap.Bool("fatal", fatal),
		zap.String("table", table),
		zap.String("field", field),
	)
}
