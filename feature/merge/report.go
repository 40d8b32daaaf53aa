package merge

import (
	"time"

	"schema-merger/core/reconcile"

	"gopkg.in/yaml.v3"
)

// Report is the YAML summary of a merge run.
type Report struct {
	RunID       string                 `yaml:"run_id"`
	GeneratedAt time.Time              `yaml:"generated_at"`
	InputA      string                 `yaml:"input_a"`
	InputB      string                 `yaml:"input_b"`
	Success     bool                   `yaml:"success"`
	Summary     reconcile.Summary      `yaml:"summary"`
	Diagnostics []reconcile.Diagnostic `yaml:"diagnostics"`
	Statements  []string               `yaml:"statements"`
}

// NewReport builds the report of a finished run.
func NewReport(runID, inputA, inputB string, res *reconcile.Result) *Report {
	return &Report{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		InputA:      inputA,
		InputB:      inputB,
		Success:     !res.Failed(),
		Summary:     res.Summary,
		Diagnostics: res.Diagnostics,
		Statements:  res.Statements,
	}
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
