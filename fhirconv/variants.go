package fhirconv

import (
	"fhir-caster/internal/choice"
	"fhir-caster/internal/record"
	"fhir-caster/model"
)

// Variant lists follow the declared order of the FHIR choice types. Every
// predicate is an exact type test: Code embeds String and Age embeds Quantity,
// so an interface test would let the earlier variant claim the later type.

// openVariants is the value[x] list of Extension and the Task parameters.
func (s *Schemas) openVariants(field string) *choice.Registry[model.Type] {
	return choice.MustNew(field,
		record.Variant[model.Type]("base64_binary", base64BinaryCodec),
		record.Variant[model.Type]("boolean", booleanCodec),
		record.Variant[model.Type]("canonical", canonicalCodec),
		record.Variant[model.Type]("code", codeCodec),
		record.Variant[model.Type]("date", dateCodec),
		record.Variant[model.Type]("date_time", dateTimeCodec),
		record.Variant[model.Type]("decimal", decimalCodec),
		record.Variant[model.Type]("id", idCodec),
		record.Variant[model.Type]("instant", instantCodec),
		record.Variant[model.Type]("integer", integerCodec),
		record.Variant[model.Type]("markdown", markdownCodec),
		record.Variant[model.Type]("oid", oidCodec),
		record.Variant[model.Type]("positive_int", positiveIntCodec),
		record.Variant[model.Type]("string_value", stringCodec),
		record.Variant[model.Type]("time", timeCodec),
		record.Variant[model.Type]("unsigned_int", unsignedIntCodec),
		record.Variant[model.Type]("uri", uriCodec),
		record.Variant[model.Type]("url", urlCodec),
		record.Variant[model.Type]("uuid", uuidCodec),
		record.Variant[model.Type, *model.Address]("address", s.Address),
		record.Variant[model.Type, *model.Age]("age", s.Age),
		record.Variant[model.Type, *model.Annotation]("annotation", s.Annotation),
		record.Variant[model.Type, *model.CodeableConcept]("codeable_concept", s.CodeableConcept),
		record.Variant[model.Type, *model.Coding]("coding", s.Coding),
		record.Variant[model.Type, *model.ContactPoint]("contact_point", s.ContactPoint),
		record.Variant[model.Type, *model.Duration]("duration", s.Duration),
		record.Variant[model.Type, *model.HumanName]("human_name", s.HumanName),
		record.Variant[model.Type, *model.Identifier]("identifier", s.Identifier),
		record.Variant[model.Type, *model.Period]("period", s.Period),
		record.Variant[model.Type, *model.Quantity]("quantity", s.Quantity),
		record.Variant[model.Type, *model.Reference]("reference", s.Reference),
		record.Variant[model.Type, *model.Meta]("meta", s.Meta),
	)
}

// observationValues is the value[x] list of Observation and its components.
func (s *Schemas) observationValues(field string) *choice.Registry[model.Type] {
	return choice.MustNew(field,
		record.Variant[model.Type, *model.Quantity]("quantity", s.Quantity),
		record.Variant[model.Type, *model.CodeableConcept]("codeable_concept", s.CodeableConcept),
		record.Variant[model.Type]("string_value", stringCodec),
		record.Variant[model.Type]("boolean", booleanCodec),
		record.Variant[model.Type]("integer", integerCodec),
		record.Variant[model.Type]("time", timeCodec),
		record.Variant[model.Type]("date_time", dateTimeCodec),
		record.Variant[model.Type, *model.Period]("period", s.Period),
	)
}

func (s *Schemas) observationEffective() *choice.Registry[model.Type] {
	return choice.MustNew("Observation.effective",
		record.Variant[model.Type]("date_time", dateTimeCodec),
		record.Variant[model.Type, *model.Period]("period", s.Period),
		record.Variant[model.Type]("instant", instantCodec),
	)
}

func (s *Schemas) annotationAuthor() *choice.Registry[model.Type] {
	return choice.MustNew("Annotation.author",
		record.Variant[model.Type, *model.Reference]("reference", s.Reference),
		record.Variant[model.Type]("string_value", stringCodec),
	)
}

func patientDeceased() *choice.Registry[model.Type] {
	return choice.MustNew("Patient.deceased",
		record.Variant[model.Type]("boolean", booleanCodec),
		record.Variant[model.Type]("date_time", dateTimeCodec),
	)
}

func patientMultipleBirth() *choice.Registry[model.Type] {
	return choice.MustNew("Patient.multipleBirth",
		record.Variant[model.Type]("boolean", booleanCodec),
		record.Variant[model.Type]("integer", integerCodec),
	)
}

// containedResources is the resource list of ContainedResource.
func (s *Schemas) containedResources() *choice.Registry[model.Resource] {
	return choice.MustNew("ContainedResource.oneof_resource",
		record.Variant[model.Resource, *model.Observation]("observation", s.Observation),
		record.Variant[model.Resource, *model.Patient]("patient", s.Patient),
		record.Variant[model.Resource, *model.Task]("task", s.Task),
	)
}
