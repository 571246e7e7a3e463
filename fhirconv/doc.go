// Package fhirconv holds the FHIR R4 record schemas and the public API that
// converts between the model package and the google/fhir R4 protocol buffers.
//
// Schemas are declarative: each datatype and resource lists its fields with a
// conversion strategy, and the record package does the walking. Choice fields
// resolve through ordered variant lists, coded fields through the code families
// of the catalog.
//
//	msg, err := fhirconv.Encode(patient)
//	res, err := fhirconv.Decode(msg)
//
// Conversions are pure and safe for concurrent use.
package fhirconv
