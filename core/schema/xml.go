package schema

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNotCreateXML is returned when the root element is not XMLSchemaStructure.
	ErrNotCreateXML = errors.New("not a create XML file")
	// ErrMissingSection is returned when the lookup or data table section is absent.
	ErrMissingSection = errors.New("missing table section")
)

// Parse decodes a create-XML document. Character data and comments are not
// kept; element and attribute order is.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	d := &Document{root: None}
	var stack []NodeID

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			id := d.NewNode(t.Name.Local, attrs...)
			if len(stack) == 0 {
				if d.root != None {
					return nil, fmt.Errorf("parsing document: multiple root elements")
				}
				d.root = id
			} else {
				d.AppendChild(stack[len(stack)-1], id)
			}
			stack = append(stack, id)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if d.root == None {
		return nil, fmt.Errorf("parsing document: no root element")
	}
	if d.Tag(d.root) != TagRoot {
		return nil, fmt.Errorf("%w: root element is %q", ErrNotCreateXML, d.Tag(d.root))
	}
	if d.LookupSection() == None || d.DataSection() == None {
		return nil, ErrMissingSection
	}
	return d, nil
}

// ParseBytes decodes a create-XML document held in memory.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and decodes a create-XML file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Encode writes the document as UTF-8 XML indented by one space per level.
// Elements without children are written self-closing.
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xml.Header)
	if err := d.encode(bw, d.root, 0); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// encode relies on bufio.Writer keeping its first error until Flush.
func (d *Document) encode(w *bufio.Writer, id NodeID, depth int) error {
	indent := strings.Repeat(" ", depth)
	tag := d.Tag(id)

	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(tag)
	for _, a := range d.Attrs(id) {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		w.WriteByte('"')
	}

	children := d.Children(id)
	if len(children) == 0 {
		_, err := w.WriteString("/>\n")
		return err
	}
	w.WriteString(">\n")
	for _, child := range children {
		if err := d.encode(w, child, depth+1); err != nil {
			return err
		}
	}
	_, err := w.WriteString(indent + "</" + tag + ">\n")
	return err
}

// Bytes returns the encoded document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the document into path, replacing any existing file.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
