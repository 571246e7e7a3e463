// Package record converts records between the FHIR object model and the FHIR
// protocol buffers by walking a declarative field list.
//
// A Schema binds one object-model struct type to one protocol buffer message
// type. Each field uses one strategy:
//
//   - Scalar: copy through a one-to-one sub-converter (a Codec)
//   - Nested: recurse into another Schema
//   - Repeated: map every element in order through a Codec or Schema
//   - Choice: resolve the populated variant through a choice.Registry
//   - Code: normalize an enumeration token through a code.Family
//
// Fields absent in the source stay absent in the target; nothing is
// synthesized. Any failure aborts the whole conversion and no partial record
// is returned. Errors are wrapped in *FieldError so the record and field path
// travel with the underlying *choice.UnmatchedVariantError or
// *code.UnknownValueError.
//
// Schemas are built in two steps, Declare then Define, so that a schema can
// refer to itself or to schemas declared later:
//
//	ext := record.Declare[model.Extension]("Extension", (*d.Extension)(nil))
//	ext.MustDefine(
//		record.Scalar("url", getURL, setURL, uriCodec),
//		record.Repeated("extension", getExt, setExt, ext),
//	)
//
// A defined Schema is immutable and safe for concurrent use.
package record
