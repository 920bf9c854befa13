// Package primitive classifies runtime values and holds the small conversion
// helpers shared by fields, validators and the serializer.
//
// Key functions:
//   - Of: classifies a value into a KindEnum
//   - IsEmpty: membership in the empty-value set
//   - Text, ParseBool, Equal: lenient scalar handling
//   - ParseTime, FormatTime: layout and ISO 8601 handling
package primitive
