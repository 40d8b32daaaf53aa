package ddl

import "schema-merger/core/schema"

// Reference pairs a local field with the field it references.
type Reference struct {
	Field  string
	RField string
}

// ReferencedTable groups every reference a table makes into one other table.
type ReferencedTable struct {
	Name       string
	References []Reference
}

// Fields returns the local field names in order.
func (t ReferencedTable) Fields() []string {
	names := make([]string, len(t.References))
	for i, r := range t.References {
		names[i] = r.Field
	}
	return names
}

// RFields returns the referenced field names in order.
func (t ReferencedTable) RFields() []string {
	names := make([]string, len(t.References))
	for i, r := range t.References {
		names[i] = r.RField
	}
	return names
}

// FKIndex accumulates references grouped by referenced table, keeping tables
// in first-encountered order.
type FKIndex struct {
	tables []ReferencedTable
	pos    map[string]int
}

// NewFKIndex returns an empty index.
func NewFKIndex() *FKIndex {
	return &FKIndex{pos: make(map[string]int)}
}

// BuildFKIndex indexes the references of fields, in order.
func BuildFKIndex(fields []schema.Field) *FKIndex {
	x := NewFKIndex()
	for _, f := range fields {
		if f.References() {
			x.Add(f.RTable, f.Name, f.RField)
		}
	}
	return x
}

// Add records that field references rtable.rfield.
func (x *FKIndex) Add(rtable, field, rfield string) {
	ref := Reference{Field: field, RField: rfield}
	if i, ok := x.pos[rtable]; ok {
		x.tables[i].References = append(x.tables[i].References, ref)
		return
	}
	x.pos[rtable] = len(x.tables)
	x.tables = append(x.tables, ReferencedTable{Name: rtable, References: []Reference{ref}})
}

// Tables returns the referenced tables in first-encountered order.
func (x *FKIndex) Tables() []ReferencedTable {
	return x.tables
}

// Len returns the number of distinct referenced tables.
func (x *FKIndex) Len() int {
	return len(x.tables)
}
