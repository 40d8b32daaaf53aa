package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<XMLSchemaStructure version="2">
  <lkptables>
    <table name="lkpsex" desc="Sex">
      <field name="sex_cod" desc="Code" type="varchar" size="1" key="true"/>
      <field name="sex_des" desc="Description" type="varchar" size="120"/>
    </table>
  </lkptables>
  <tables>
    <table name="maintable">
      <field name="rowuuid" type="varchar" size="80" key="true"/>
      <field name="sex" type="varchar" size="1" rtable="lkpsex" rfield="sex_cod"/>
      <table name="maintable_crops">
        <field name="crop" type="varchar" size="80" key="true"/>
      </table>
      <field name="weight" type="decimal" size="10" decsize="3"/>
    </table>
  </tables>
</XMLSchemaStructure>`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func TestParse(t *testing.T) {
	d := mustParse(t, sampleXML)

	assert.Equal(t, TagRoot, d.Tag(d.Root()))
	assert.Equal(t, "2", d.Attr(d.Root(), "version"))
	assert.Equal(t, "lkptables", d.Tag(d.LookupSection()))
	assert.Equal(t, "tables", d.Tag(d.DataSection()))

	lookups := d.Tables(d.LookupSection())
	require.Len(t, lookups, 1)
	assert.Equal(t, "lkpsex", d.Name(lookups[0]))
	assert.Equal(t, "Sex", d.Attr(lookups[0], "desc"))

	main := d.Tables(d.DataSection())
	require.Len(t, main, 1)
	assert.Len(t, d.Children(main[0]), 4)
	assert.Equal(t, d.DataSection(), d.Parent(main[0]))
}

func TestParse_Errors(t *testing.T) {
	t.Run("Wrong Root", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<ODKImportXML><a/><b/></ODKImportXML>`))
		assert.ErrorIs(t, err, ErrNotCreateXML)
	})

	t.Run("Missing Section", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<XMLSchemaStructure><lkptables/></XMLSchemaStructure>`))
		assert.ErrorIs(t, err, ErrMissingSection)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<XMLSchemaStructure><lkptables></XMLSchemaStructure>`))
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Parse(strings.NewReader(``))
		assert.Error(t, err)
	})
}

func TestFields(t *testing.T) {
	d := mustParse(t, sampleXML)
	main := d.Tables(d.DataSection())[0]

	fields := d.Fields(main)
	require.Len(t, fields, 3)
	assert.Equal(t, "rowuuid", fields[0].Name)
	assert.True(t, fields[0].IsKey())
	assert.Equal(t, "lkpsex", fields[1].RTable)
	assert.True(t, fields[1].References())
	assert.Equal(t, "decimal", fields[2].Type)
	assert.Equal(t, "3", fields[2].DecSize)

	_, ok := d.FindField(main, "maintable_crops")
	assert.False(t, ok, "child tables are not fields")

	id, ok := d.FindField(main, "weight")
	assert.True(t, ok)
	assert.Equal(t, "10", d.Attr(id, "size"))
}

func TestClone(t *testing.T) {
	a := mustParse(t, sampleXML)
	b := mustParse(t, sampleXML)
	main := a.Tables(a.DataSection())[0]

	copied := b.Clone(a, main)
	assert.Equal(t, None, b.Parent(copied))
	b.AppendChild(b.LookupSection(), copied)

	assert.Equal(t, "maintable", b.Name(copied))
	assert.Len(t, b.Children(copied), 4)
	nested := b.Tables(copied)
	require.Len(t, nested, 1)
	assert.Equal(t, copied, b.Parent(nested[0]))

	// Mutating the copy leaves the source untouched.
	b.SetAttr(copied, "name", "renamed")
	assert.Equal(t, "maintable", a.Name(main))
}

func TestPrependChild(t *testing.T) {
	d := mustParse(t, sampleXML)
	main := d.Tables(d.DataSection())[0]

	f := d.NewNode(TagField, Attr{Name: "name", Value: "first"})
	d.PrependChild(main, f)

	assert.Equal(t, f, d.Child(main, 0))
	assert.Equal(t, "rowuuid", d.Name(d.Child(main, 1)))
	assert.Equal(t, main, d.Parent(f))
}

func TestTableIndex(t *testing.T) {
	d := mustParse(t, sampleXML)
	idx := NewTableIndex(d, d.DataSection())

	assert.Equal(t, 2, idx.Len())
	id, ok := idx.Lookup("maintable_crops")
	assert.True(t, ok)
	assert.Equal(t, "maintable", d.Name(d.Parent(id)))

	_, ok = idx.Lookup("lkpsex")
	assert.False(t, ok, "lookup section is not indexed")
	_, ok = idx.Lookup("")
	assert.False(t, ok)

	// First match wins.
	dup := d.NewNode(TagTable, Attr{Name: "name", Value: "maintable"})
	d.AppendChild(d.DataSection(), dup)
	idx.Add(d, dup)
	id, _ = idx.Lookup("maintable")
	assert.NotEqual(t, dup, id)
}

func TestEncodeRoundTrip(t *testing.T) {
	d := mustParse(t, sampleXML)
	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, d.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), `<field name="sex_cod" desc="Code" type="varchar" size="1" key="true"/>`)
	assert.NotContains(t, string(data), "</field>")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d.Len(), loaded.Len())
	main := loaded.Tables(loaded.DataSection())[0]
	assert.Equal(t, d.Fields(d.Tables(d.DataSection())[0]), loaded.Fields(main))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_Layout(t *testing.T) {
	d := mustParse(t, `<XMLSchemaStructure><lkptables/><tables><table name="t" desc="a &amp; &quot;b&quot;"><field name="f"/></table></tables></XMLSchemaStructure>`)

	data, err := d.Bytes()
	require.NoError(t, err)

	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<XMLSchemaStructure>
 <lkptables/>
 <tables>
  <table name="t" desc="a &amp; &#34;b&#34;">
   <field name="f"/>
  </table>
 </tables>
</XMLSchemaStructure>
`, string(data))

	again, err := ParseBytes(data)
	require.NoError(t, err)
	table := again.Tables(again.DataSection())[0]
	assert.Equal(t, `a & "b"`, again.Attr(table, "desc"))
}
