package schema

// TableIndex maps table names to nodes. When a name appears more than once
// the first table in document order wins.
type TableIndex struct {
	byName map[string]NodeID
}

// NewTableIndex indexes every table below section, at any depth.
func NewTableIndex(d *Document, section NodeID) *TableIndex {
	idx := &TableIndex{byName: make(map[string]NodeID)}
	for _, child := range d.Children(section) {
		idx.Add(d, child)
	}
	return idx
}

// Add indexes the table at id and all tables nested below it. Names already
// indexed keep their first node.
func (x *TableIndex) Add(d *Document, id NodeID) {
	d.Walk(id, func(n NodeID) bool {
		if !d.IsTable(n) {
			return false
		}
		name := d.Name(n)
		if _, seen := x.byName[name]; !seen && name != "" {
			x.byName[name] = n
		}
		return true
	})
}

// Lookup returns the table with the given name. The empty name never matches.
func (x *TableIndex) Lookup(name string) (NodeID, bool) {
	if name == "" {
		return None, false
	}
	id, ok := x.byName[name]
	return id, ok
}

// Len returns the number of indexed names.
func (x *TableIndex) Len() int {
	return len(x.byName)
}
