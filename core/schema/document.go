package schema

// NodeID addresses a node inside a Document arena.
type NodeID int

// None is the id of a missing node.
const None NodeID = -1

const (
	// TagRoot is the tag of a create-XML root element.
	TagRoot = "XMLSchemaStructure"
	// TagTable is the tag of a table element.
	TagTable = "table"
	// TagField is the tag of a field element.
	TagField = "field"
)

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Name  string
	Value string
}

type node struct {
	tag      string
	attrs    []Attr
	parent   NodeID
	children []NodeID
}

// Document is an arena-backed element tree.
type Document struct {
	nodes []node
	root  NodeID
}

// NewDocument creates a document with a single root element.
func NewDocument(rootTag string, attrs ...Attr) *Document {
	d := &Document{}
	d.root = d.NewNode(rootTag, attrs...)
	return d
}

// NewNode allocates a detached node and returns its id.
func (d *Document) NewNode(tag string, attrs ...Attr) NodeID {
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, node{
		tag:    tag,
		attrs:  append([]Attr(nil), attrs...),
		parent: None,
	})
	return id
}

// Root returns the root element id.
func (d *Document) Root() NodeID {
	return d.root
}

// Len returns the number of nodes allocated in the arena, attached or not.
func (d *Document) Len() int {
	return len(d.nodes)
}

func (d *Document) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(d.nodes)
}

// Tag returns the element tag of a node.
func (d *Document) Tag(id NodeID) string {
	if !d.valid(id) {
		return ""
	}
	return d.nodes[id].tag
}

// Attrs returns the ordered attributes of a node.
func (d *Document) Attrs(id NodeID) []Attr {
	if !d.valid(id) {
		return nil
	}
	return d.nodes[id].attrs
}

// Attr returns the value of the named attribute, or "" when absent.
func (d *Document) Attr(id NodeID, name string) string {
	for _, a := range d.Attrs(id) {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets an attribute, appending it when absent.
func (d *Document) SetAttr(id NodeID, name, value string) {
	if !d.valid(id) {
		return
	}
	n := &d.nodes[id]
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// Name returns the name attribute of a node.
func (d *Document) Name(id NodeID) string {
	return d.Attr(id, "name")
}

// Parent returns the parent id of a node, or None for the root and for
// detached nodes.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.valid(id) {
		return None
	}
	return d.nodes[id].parent
}

// Children returns the ordered child ids of a node. The slice must not be
// modified by the caller.
func (d *Document) Children(id NodeID) []NodeID {
	if !d.valid(id) {
		return nil
	}
	return d.nodes[id].children
}

// Child returns the i-th child of a node, or None.
func (d *Document) Child(id NodeID, i int) NodeID {
	children := d.Children(id)
	if i < 0 || i >= len(children) {
		return None
	}
	return children[i]
}

// IsTable reports whether the node is a table element.
func (d *Document) IsTable(id NodeID) bool {
	return d.Tag(id) == TagTable
}

// AppendChild attaches a detached node as the last child of parent.
func (d *Document) AppendChild(parent, child NodeID) {
	if !d.valid(parent) || !d.valid(child) {
		return
	}
	d.nodes[child].parent = parent
	d.nodes[parent].children = append(d.nodes[parent].children, child)
}

// PrependChild attaches a detached node as the first child of parent.
func (d *Document) PrependChild(parent, child NodeID) {
	if !d.valid(parent) || !d.valid(child) {
		return
	}
	d.nodes[child].parent = parent
	children := make([]NodeID, 0, len(d.nodes[parent].children)+1)
	children = append(children, child)
	d.nodes[parent].children = append(children, d.nodes[parent].children...)
}

// Clone deep-copies the subtree rooted at id in src into this document and
// returns the detached copy. src may be the same document.
func (d *Document) Clone(src *Document, id NodeID) NodeID {
	if !src.valid(id) {
		return None
	}
	n := src.nodes[id]
	copied := d.NewNode(n.tag, n.attrs...)
	// Snapshot children first: when src == d the arena may grow below.
	children := append([]NodeID(nil), n.children...)
	for _, child := range children {
		d.AppendChild(copied, d.Clone(src, child))
	}
	return copied
}

// LookupSection returns the section holding the lookup tables.
func (d *Document) LookupSection() NodeID {
	return d.Child(d.root, 0)
}

// DataSection returns the section holding the nested data tables.
func (d *Document) DataSection() NodeID {
	return d.Child(d.root, 1)
}

// Tables returns the table children of a node in document order.
func (d *Document) Tables(id NodeID) []NodeID {
	var tables []NodeID
	for _, child := range d.Children(id) {
		if d.IsTable(child) {
			tables = append(tables, child)
		}
	}
	return tables
}

// Walk visits id and its descendants depth-first in document order. Returning
// false from fn skips the node's children.
func (d *Document) Walk(id NodeID, fn func(NodeID) bool) {
	if !d.valid(id) {
		return
	}
	if !fn(id) {
		return
	}
	for _, child := range d.Children(id) {
		d.Walk(child, fn)
	}
}
