package reconcile

import "schema-merger/core/schema"

// Kind tags a diagnostic.
type Kind string

const (
	// KindTableNotFound marks a table of A missing from B.
	KindTableNotFound Kind = "TNF"
	// KindTableParent marks a table whose parent differs between A and B.
	KindTableParent Kind = "TNS"
	// KindFieldNotFound marks a field of A missing from B's table.
	KindFieldNotFound Kind = "FNF"
	// KindFieldMismatch marks a field whose definition differs between A and B.
	KindFieldMismatch Kind = "FNS"
)

// Section names the document section a diagnostic belongs to.
type Section string

const (
	// SectionLookup is the flat lookup-table section.
	SectionLookup Section = "lookup"
	// SectionData is the nested data-table section.
	SectionData Section = "data"
)

// Diagnostic is a single finding of a comparison run.
type Diagnostic struct {
	// Kind is the four-letter tag of the finding.
	Kind Kind `json:"kind" yaml:"kind"`

	// Fatal findings make the whole run fail.
	Fatal bool `json:"fatal" yaml:"fatal"`

	// Section is the section of document A the finding comes from.
	Section Section `json:"section" yaml:"section"`

	// Table is the offending table (or the table owning the offending field).
	Table string `json:"table" yaml:"table"`

	// Field is the offending field, empty for table findings.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`

	// Message is the rendered log line, prefixed by the kind tag.
	Message string `json:"message" yaml:"message"`
}

// String returns the rendered log line.
func (d Diagnostic) String() string {
	return d.Message
}

// Summary provides aggregate counts for a comparison run.
type Summary struct {
	// TablesNotFound counts TNF findings, orphans included.
	TablesNotFound int `json:"tables_not_found" yaml:"tables_not_found"`

	// ParentMismatches counts TNS findings.
	ParentMismatches int `json:"parent_mismatches" yaml:"parent_mismatches"`

	// FieldsNotFound counts FNF findings.
	FieldsNotFound int `json:"fields_not_found" yaml:"fields_not_found"`

	// FieldMismatches counts FNS findings.
	FieldMismatches int `json:"field_mismatches" yaml:"field_mismatches"`

	// TablesAdded counts tables cloned into the merged document.
	TablesAdded int `json:"tables_added" yaml:"tables_added"`

	// FieldsAdded counts fields cloned into the merged document.
	FieldsAdded int `json:"fields_added" yaml:"fields_added"`

	// Orphans counts new tables whose parent is missing from B.
	Orphans int `json:"orphans" yaml:"orphans"`

	// Fatal counts fatal findings.
	Fatal int `json:"fatal" yaml:"fatal"`

	// Statements counts emitted SQL statements.
	Statements int `json:"statements" yaml:"statements"`
}

// Result holds the artifacts of a comparison run.
type Result struct {
	// Diagnostics contains the findings in discovery order.
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`

	// Statements contains the migration script in emission order.
	Statements []string `json:"statements" yaml:"statements"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary" yaml:"summary"`

	// Merged is document B after the merge.
	Merged *schema.Document `json:"-" yaml:"-"`
}

// Failed reports whether any fatal finding occurred.
func (r *Result) Failed() bool {
	return r.Summary.Fatal > 0
}

// Findings returns the diagnostics split into non-fatal and fatal ones,
// each in discovery order.
func (r *Result) Findings() (reported, fatal []Diagnostic) {
	for _, d := range r.Diagnostics {
		if d.Fatal {
			fatal = append(fatal, d)
		} else {
			reported = append(reported, d)
		}
	}
	return reported, fatal
}
