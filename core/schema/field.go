package schema

// Field is the comparable view of a field element. Values are the raw
// attribute strings; nothing is normalized.
type Field struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Size    string `json:"size,omitempty" yaml:"size,omitempty"`
	DecSize string `json:"decsize,omitempty" yaml:"decsize,omitempty"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	RTable  string `json:"rtable,omitempty" yaml:"rtable,omitempty"`
	RField  string `json:"rfield,omitempty" yaml:"rfield,omitempty"`
}

// IsKey reports whether the field is part of the primary key.
func (f Field) IsKey() bool {
	return f.Key == "true"
}

// References reports whether the field carries a foreign key reference.
func (f Field) References() bool {
	return f.RTable != ""
}

// Field reads the field view of a node.
func (d *Document) Field(id NodeID) Field {
	return Field{
		Name:    d.Attr(id, "name"),
		Type:    d.Attr(id, "type"),
		Size:    d.Attr(id, "size"),
		DecSize: d.Attr(id, "decsize"),
		Key:     d.Attr(id, "key"),
		RTable:  d.Attr(id, "rtable"),
		RField:  d.Attr(id, "rfield"),
	}
}

// Fields returns the field view of every non-table child of a table, in
// document order.
func (d *Document) Fields(table NodeID) []Field {
	var fields []Field
	for _, child := range d.Children(table) {
		if d.IsTable(child) {
			continue
		}
		fields = append(fields, d.Field(child))
	}
	return fields
}

// FindField returns the first non-table child of table with the given name.
func (d *Document) FindField(table NodeID, name string) (NodeID, bool) {
	for _, child := range d.Children(table) {
		if d.IsTable(child) {
			continue
		}
		if d.Name(child) == name {
			return child, true
		}
	}
	return None, false
}
