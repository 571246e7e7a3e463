// Package choice resolves choice fields: logical fields that hold exactly one
// of a closed, ordered set of typed variants.
//
// On the object-model side the populated variant is implicit (the dynamic type
// of an interface value, or the shape of a string) and is found by testing the
// variant predicates in declared order; the first match wins. On the protocol
// buffer side the variant is an explicit oneof member and is found by a direct
// lookup on the member name.
//
// The two directions are deliberately asymmetric. Declaration order is the only
// tie-break when two predicates accept the same value (for example a Code value
// also satisfies a StringLike test), so registries keep an ordered list and
// never a set.
//
// # Key capabilities
//
//   - Ordered first-match resolution (Resolve)
//   - O(1) tag dispatch (Dispatch)
//   - Oneof read/write helpers that never leave a half-written message (Write, Read)
//   - Coverage check against a protoreflect oneof descriptor (Bind)
//   - A typed, catchable *UnmatchedVariantError
package choice
