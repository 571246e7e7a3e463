// Package code converts coded enumeration tokens between the lexical
// conventions of the FHIR object model and the FHIR protocol buffers.
//
// Object-model codes are kebab-case ("in-progress"), occasionally camelCase
// ("dateTime") or symbolic ("<="). Protocol buffer enum constants are
// SCREAMING_SNAKE_CASE ("IN_PROGRESS"), sometimes with a prefix ("V_4_0_1").
//
// # Key capabilities
//
//   - Explicit per-family normalization rules (see Rule)
//   - Closed vocabularies with membership checks in both directions
//   - Binding to protoreflect enum descriptors for name and number lookup
//   - Round-trip self check that flags families whose rule is lossy
//
// # Inverse rules
//
// The forward direction is uniform: separators become "_" and the token is
// upper-cased. The inverse is chosen per family:
//
//	join   IN_PROGRESS -> in-progress
//	camel  DATE_TIME   -> dateTime
//	strip  IN_PROGRESS -> INPROGRESS, then looked up in the vocabulary
//
// An unrecognized token in either direction is an *UnknownValueError.
package code
