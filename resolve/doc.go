// Package resolve reads values out of host objects by dotted path.
//
// Each segment is looked up by key when the current value is a mapping and by
// attribute otherwise. A missing key yields nil; a missing attribute is an
// *AttributeResolutionError.
package resolve
