package reconcile

// reconcileLookupTables compares every lookup table of A against B's lookup
// section. Missing fields only reach the script; missing tables reach both the
// script and the merged document.
func (s *Session) reconcileLookupTables() {
	for _, table := range s.a.Tables(s.a.LookupSection()) {
		name := s.a.Name(table)

		found, ok := s.lookups.Lookup(name)
		if !ok {
			s.record(KindTableNotFound, false, SectionLookup, name, "",
				"Lookup table %s from A not found in B", name)
			s.script.CreateTable(name, s.a.Fields(table))

			copied := s.b.Clone(s.a, table)
			s.b.AppendChild(s.b.LookupSection(), copied)
			s.lookups.Add(s.b, copied)
			s.summary.TablesAdded++
			continue
		}

		for _, child := range s.a.Children(table) {
			if s.a.IsTable(child) {
				continue
			}
			field := s.a.Field(child)

			other, ok := s.b.FindField(found, field.Name)
			if !ok {
				s.record(KindFieldNotFound, false, SectionLookup, name, field.Name,
					"Field %s in lookup table %s from A is not found in B", field.Name, name)
				s.script.AddColumn(name, field)
				continue
			}
			if !FieldsEqual(field, s.b.Field(other)) {
				s.record(KindFieldMismatch, false, SectionLookup, name, field.Name,
					"Field %s in lookup table %s from A is not the same in B", field.Name, name)
			}
		}
	}
}
