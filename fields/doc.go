// Package fields provides the typed leaves of a schema.
//
// A field converts in two directions. ExtractNative reads a value out of a
// host object (by explicit source path or by the field name) and ToNative
// turns it into plain data. FromNative coerces plain input back into the
// field's Go type. Validate runs the field's default validators followed by
// the user supplied ones and returns every failure.
//
// Fields are immutable after construction. Per call state (the owning schema
// and the allow-blank-source flag) travels in a Context.
package fields
