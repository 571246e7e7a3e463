package fhirconv

import (
	"errors"

	"fhir-caster/internal/record"
	"fhir-caster/model"
)

func domainFields[T any](s *Schemas, dr func(*T) *model.DomainResource) []record.Field[T] {
	return []record.Field[T]{
		scalar("id", func(t *T) **model.ID { return &dr(t).ID }, idCodec),
		nested("meta", func(t *T) **model.Meta { return &dr(t).Meta }, s.Meta),
		scalar("language", func(t *T) **model.Code { return &dr(t).Language }, codeCodec),
		records("extension", func(t *T) *[]*model.Extension { return &dr(t).Extension }, s.Extension),
	}
}

func (s *Schemas) defineResources(fam *families) error {
	return errors.Join(
		s.Patient.Define(append(domainFields(s, func(p *model.Patient) *model.DomainResource { return &p.DomainResource }),
			records("identifier", func(p *model.Patient) *[]*model.Identifier { return &p.Identifier }, s.Identifier),
			scalar("active", func(p *model.Patient) **model.Boolean { return &p.Active }, booleanCodec),
			records("name", func(p *model.Patient) *[]*model.HumanName { return &p.Name }, s.HumanName),
			records("telecom", func(p *model.Patient) *[]*model.ContactPoint { return &p.Telecom }, s.ContactPoint),
			coded("gender", func(p *model.Patient) *model.AdministrativeGender { return &p.Gender }, fam.gender),
			scalar("birth_date", func(p *model.Patient) **model.Date { return &p.BirthDate }, dateCodec),
			oneOf("deceased", func(p *model.Patient) *model.Type { return &p.Deceased }, patientDeceased(), false),
			records("address", func(p *model.Patient) *[]*model.Address { return &p.Address }, s.Address),
			nested("marital_status", func(p *model.Patient) **model.CodeableConcept { return &p.MaritalStatus }, s.CodeableConcept),
			oneOf("multiple_birth", func(p *model.Patient) *model.Type { return &p.MultipleBirth }, patientMultipleBirth(), false),
			records("general_practitioner", func(p *model.Patient) *[]*model.Reference { return &p.GeneralPractitioner }, s.Reference),
			nested("managing_organization", func(p *model.Patient) **model.Reference { return &p.ManagingOrganization }, s.Reference),
		)...),

		s.ObservationComponent.Define(append(elementFields(s, func(c *model.ObservationComponent) *model.Element { return &c.Element }),
			nested("code", func(c *model.ObservationComponent) **model.CodeableConcept { return &c.Code }, s.CodeableConcept),
			oneOf("value", func(c *model.ObservationComponent) *model.Type { return &c.Value }, s.observationValues("Observation.component.value"), false),
			nested("data_absent_reason", func(c *model.ObservationComponent) **model.CodeableConcept { return &c.DataAbsentReason }, s.CodeableConcept),
			records("interpretation", func(c *model.ObservationComponent) *[]*model.CodeableConcept { return &c.Interpretation }, s.CodeableConcept),
		)...),

		s.Observation.Define(append(domainFields(s, func(o *model.Observation) *model.DomainResource { return &o.DomainResource }),
			records("identifier", func(o *model.Observation) *[]*model.Identifier { return &o.Identifier }, s.Identifier),
			records("based_on", func(o *model.Observation) *[]*model.Reference { return &o.BasedOn }, s.Reference),
			coded("status", func(o *model.Observation) *model.ObservationStatus { return &o.Status }, fam.observationStatus),
			records("category", func(o *model.Observation) *[]*model.CodeableConcept { return &o.Category }, s.CodeableConcept),
			nested("code", func(o *model.Observation) **model.CodeableConcept { return &o.Code }, s.CodeableConcept),
			nested("subject", func(o *model.Observation) **model.Reference { return &o.Subject }, s.Reference),
			nested("encounter", func(o *model.Observation) **model.Reference { return &o.Encounter }, s.Reference),
			oneOf("effective", func(o *model.Observation) *model.Type { return &o.Effective }, s.observationEffective(), false),
			scalar("issued", func(o *model.Observation) **model.Instant { return &o.Issued }, instantCodec),
			records("performer", func(o *model.Observation) *[]*model.Reference { return &o.Performer }, s.Reference),
			oneOf("value", func(o *model.Observation) *model.Type { return &o.Value }, s.observationValues("Observation.value"), false),
			records("interpretation", func(o *model.Observation) *[]*model.CodeableConcept { return &o.Interpretation }, s.CodeableConcept),
			records("note", func(o *model.Observation) *[]*model.Annotation { return &o.Note }, s.Annotation),
			nested("body_site", func(o *model.Observation) **model.CodeableConcept { return &o.BodySite }, s.CodeableConcept),
			nested("method", func(o *model.Observation) **model.CodeableConcept { return &o.Method }, s.CodeableConcept),
			records("has_member", func(o *model.Observation) *[]*model.Reference { return &o.HasMember }, s.Reference),
			records("derived_from", func(o *model.Observation) *[]*model.Reference { return &o.DerivedFrom }, s.Reference),
			records("component", func(o *model.Observation) *[]*model.ObservationComponent { return &o.Component }, s.ObservationComponent),
		)...),

		s.TaskParameter.Define(append(elementFields(s, func(p *model.TaskParameter) *model.Element { return &p.Element }),
			nested("type", func(p *model.TaskParameter) **model.CodeableConcept { return &p.Type }, s.CodeableConcept),
			oneOf("value", func(p *model.TaskParameter) *model.Type { return &p.Value }, s.openVariants("Task.input.value"), true),
		)...),

		s.TaskOutput.Define(append(elementFields(s, func(o *model.TaskOutput) *model.Element { return &o.Element }),
			nested("type", func(o *model.TaskOutput) **model.CodeableConcept { return &o.Type }, s.CodeableConcept),
			oneOf("value", func(o *model.TaskOutput) *model.Type { return &o.Value }, s.openVariants("Task.output.value"), true),
		)...),

		s.Task.Define(append(domainFields(s, func(t *model.Task) *model.DomainResource { return &t.DomainResource }),
			records("identifier", func(t *model.Task) *[]*model.Identifier { return &t.Identifier }, s.Identifier),
			records("based_on", func(t *model.Task) *[]*model.Reference { return &t.BasedOn }, s.Reference),
			coded("status", func(t *model.Task) *model.TaskStatus { return &t.Status }, fam.taskStatus),
			nested("business_status", func(t *model.Task) **model.CodeableConcept { return &t.BusinessStatus }, s.CodeableConcept),
			coded("intent", func(t *model.Task) *model.TaskIntent { return &t.Intent }, fam.taskIntent),
			coded("priority", func(t *model.Task) *model.RequestPriority { return &t.Priority }, fam.priority),
			nested("code", func(t *model.Task) **model.CodeableConcept { return &t.Code }, s.CodeableConcept),
			scalar("description", func(t *model.Task) **model.String { return &t.Description }, stringCodec),
			nested("focus", func(t *model.Task) **model.Reference { return &t.Focus }, s.Reference),
			nested("execution_period", func(t *model.Task) **model.Period { return &t.ExecutionPeriod }, s.Period),
			scalar("authored_on", func(t *model.Task) **model.DateTime { return &t.AuthoredOn }, dateTimeCodec),
			scalar("last_modified", func(t *model.Task) **model.DateTime { return &t.LastModified }, dateTimeCodec),
			nested("requester", func(t *model.Task) **model.Reference { return &t.Requester }, s.Reference),
			nested("owner", func(t *model.Task) **model.Reference { return &t.Owner }, s.Reference),
			records("note", func(t *model.Task) *[]*model.Annotation { return &t.Note }, s.Annotation),
			records("input", func(t *model.Task) *[]*model.TaskParameter { return &t.Input }, s.TaskParameter),
			records("output", func(t *model.Task) *[]*model.TaskOutput { return &t.Output }, s.TaskOutput),
		)...),
	)
}
