package reconcile

import "schema-merger/core/schema"

// FieldsEqual reports whether two fields share key flag, type, size, decimal
// size and reference. Names are not compared and values are compared as
// exact strings.
func FieldsEqual(a, b schema.Field) bool {
	return a.Key == b.Key &&
		a.Type == b.Type &&
		a.Size == b.Size &&
		a.DecSize == b.DecSize &&
		a.RTable == b.RTable &&
		a.RField == b.RField
}
