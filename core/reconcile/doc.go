// Package reconcile compares two create-XML documents and merges the additive
// differences of the newer one (A) into the older one (B).
//
// A Session walks the lookup-table section of A and then its nested data-table
// section, classifying every table and field against B:
//
//   - TNF: a table of A is not in B. It is cloned into B and a CREATE TABLE
//     statement is emitted, unless its parent is missing from B too, which is
//     fatal.
//   - TNS: a data table exists in both documents under different parents.
//     Fatal; the table's content is not compared.
//   - FNF: a field of A is not in B's table. An ADD COLUMN statement is emitted;
//     data-table fields are also cloned into B, lookup-table fields are not.
//   - FNS: a field exists in both but its definition differs. Reported only.
//
// Removals are never considered: anything in B that A lacks is left alone.
//
// # Usage
//
//	res := reconcile.Compare(docA, docB, reconcile.WithLogger(log))
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d)
//	}
//	if res.Failed() {
//	    // TNS or orphaned tables were found
//	}
//
// A Session is single-use and not safe for concurrent use. B is mutated in
// place; A is only read.
package reconcile
