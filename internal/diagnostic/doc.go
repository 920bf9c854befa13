// Package diagnostic collects structured errors and warnings produced while
// declaring schemas or loading schema files.
//
// Key capabilities:
//   - Aggregation of every configuration problem instead of the first one
//   - Stable codes for each kind of problem
//   - "did you mean" suggestions for misspelt names
package diagnostic
