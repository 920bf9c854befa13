// Package match compares identifiers loosely. resolve uses NormalizeIdent to
// find struct fields by schema names; Suggest produces "did you mean" hints
// for misspelt schema, field and validator names.
package match
