package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const docB = `<?xml version="1.0" encoding="UTF-8"?>
<XMLSchemaStructure>
 <lkptables>
  <table name="lkpsex">
   <field name="sex_cod" type="varchar" size="1" key="true"/>
   <field name="sex_des" type="varchar" size="120"/>
  </table>
 </lkptables>
 <tables>
  <table name="maintable">
   <field name="rowuuid" type="varchar" size="80" key="true"/>
   <field name="sex" type="varchar" size="1" rtable="lkpsex" rfield="sex_cod"/>
  </table>
 </tables>
</XMLSchemaStructure>
`

// docA adds a field to maintable and a child table below it.
const docA = `<?xml version="1.0" encoding="UTF-8"?>
<XMLSchemaStructure>
 <lkptables>
  <table name="lkpsex">
   <field name="sex_cod" type="varchar" size="1" key="true"/>
   <field name="sex_des" type="varchar" size="120"/>
  </table>
 </lkptables>
 <tables>
  <table name="maintable">
   <field name="rowuuid" type="varchar" size="80" key="true"/>
   <field name="sex" type="varchar" size="1" rtable="lkpsex" rfield="sex_cod"/>
   <field name="age" type="int" size="3"/>
   <table name="maintable_crops">
    <field name="rowuuid" type="varchar" size="80" key="true" rtable="maintable" rfield="rowuuid"/>
    <field name="crop" type="varchar" size="40" key="true"/>
   </table>
  </table>
 </tables>
</XMLSchemaStructure>
`

// docOrphan has a second root table, which cannot be placed in B.
const docOrphan = `<XMLSchemaStructure>
 <lkptables/>
 <tables>
  <table name="maintable">
   <field name="rowuuid" type="varchar" size="80" key="true"/>
   <field name="age" type="int" size="3"/>
  </table>
  <table name="othermain">
   <field name="id" type="int" size="11" key="true"/>
  </table>
 </tables>
</XMLSchemaStructure>
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func request(t *testing.T, a, b string) Request {
	dir := t.TempDir()
	return Request{
		PathA:      writeFile(t, dir, "a.xml", a),
		PathB:      writeFile(t, dir, "b.xml", b),
		MergedPath: filepath.Join(dir, "combined-create.xml"),
		ScriptPath: filepath.Join(dir, "diff.sql"),
	}
}
