package object

// Fielder is implemented by every Object kind that exposes a dotted field
// map: String, Int, Array, and Module (spec §4.5.4 step 2). Types without
// fields simply don't implement this interface, which the evaluator treats
// as a TypeError at the field-access site.
type Fielder interface {
	Fields() map[string]Object
}
