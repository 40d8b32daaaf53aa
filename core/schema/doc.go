// Package schema models create-XML schema documents.
//
// A document is stored as an arena of nodes addressed by NodeID. Nodes are
// never deleted; cloning a node from another document copies the whole
// subtree into this document's arena and returns the new root id.
//
// # Layout
//
// The root element is XMLSchemaStructure. Its first child element holds the
// lookup tables, its second child element holds the nested data tables:
//
//	<XMLSchemaStructure>
//	  <lkptables>
//	    <table name="lkpsex"><field name="sex_cod" type="varchar" size="1" key="true"/></table>
//	  </lkptables>
//	  <tables>
//	    <table name="maintable">
//	      <field name="rowuuid" type="varchar" size="80" key="true"/>
//	      <table name="maintable_msel_crops">...</table>
//	    </table>
//	  </tables>
//	</XMLSchemaStructure>
//
// # Usage
//
//	doc, err := schema.Load("create.xml")
//	if err != nil {
//	    return err
//	}
//	idx := schema.NewTableIndex(doc, doc.DataSection())
//	if id, ok := idx.Lookup("maintable"); ok {
//	    fields := doc.Fields(id)
//	}
package schema
