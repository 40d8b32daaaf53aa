package reconcile

import "schema-merger/core/schema"

// reconcileTable classifies one data table of A and, when B has it under the
// same parent, descends into its fields and child tables in document order.
func (s *Session) reconcileTable(table schema.NodeID) {
	name := s.a.Name(table)
	parentName := s.a.Name(s.a.Parent(table))

	found, ok := s.tables.Lookup(name)
	if !ok {
		s.addTable(table, name, parentName)
		return
	}

	if parentName != s.b.Name(s.b.Parent(found)) {
		s.record(KindTableParent, true, SectionData, name, "",
			"Table %s from A does not have the same parent in B", name)
		return
	}

	for _, child := range s.a.Children(table) {
		if s.a.IsTable(child) {
			s.reconcileTable(child)
			continue
		}
		field := s.a.Field(child)

		other, ok := s.b.FindField(found, field.Name)
		if !ok {
			s.record(KindFieldNotFound, false, SectionData, name, field.Name,
				"Field %s in table %s from A is not found in B", field.Name, name)
			s.script.AddColumn(name, field)
			s.b.PrependChild(found, s.b.Clone(s.a, child))
			s.summary.FieldsAdded++
			continue
		}
		if !FieldsEqual(field, s.b.Field(other)) {
			s.record(KindFieldMismatch, false, SectionData, name, field.Name,
				"Field %s in table %s from A is not the same in B", field.Name, name)
		}
	}
}

// addTable places a table missing from B under its parent, or reports it as
// an orphan when the parent is missing too.
func (s *Session) addTable(table schema.NodeID, name, parentName string) {
	parent, ok := s.tables.Lookup(parentName)
	if !ok {
		s.record(KindTableNotFound, true, SectionData, name, "",
			"Table %s from A not found in B. Its parent in A is not found in B", name)
		s.summary.Orphans++
		return
	}

	s.record(KindTableNotFound, false, SectionData, name, "",
		"Table %s from A not found in B", name)
	s.script.CreateTable(name, s.a.Fields(table))

	copied := s.b.Clone(s.a, table)
	s.b.AppendChild(parent, copied)
	s.tables.Add(s.b, copied)
	s.summary.TablesAdded++
}
