// Package model is a mutable Go object model for a subset of FHIR R4.
//
// Singular fields are pointers and repeated fields are slices; a nil pointer
// or an empty slice means the element is absent. A non-nil primitive with a
// zero Value is present. Choice fields ("value[x]") hold a Type, a sealed
// interface implemented only by the datatypes of this package.
//
// Some datatypes are specializations of others and embed them: Code, ID and
// Markdown embed String; URL, Canonical, OID and UUID embed URI; Age and Duration embed
// Quantity. The StringLike, URILike, IntegerLike and QuantityLike interfaces
// expose that inherited view, so a value may satisfy more than one of them.
package model
