package fhirconv

import (
	"errors"

	"fhir-caster/internal/record"
	"fhir-caster/model"
)

func elementFields[T any](s *Schemas, el func(*T) *model.Element) []record.Field[T] {
	return []record.Field[T]{
		scalar("id", func(t *T) **model.String { return &el(t).ID }, stringCodec),
		records("extension", func(t *T) *[]*model.Extension { return &el(t).Extension }, s.Extension),
	}
}

// quantityFields is shared by Quantity and the types embedding it.
func quantityFields[T any](s *Schemas, fam *families, q func(*T) *model.Quantity) []record.Field[T] {
	return append(elementFields(s, func(t *T) *model.Element { return &q(t).Element }),
		scalar("value", func(t *T) **model.Decimal { return &q(t).Value }, decimalCodec),
		coded("comparator", func(t *T) *model.QuantityComparator { return &q(t).Comparator }, fam.comparator),
		scalar("unit", func(t *T) **model.String { return &q(t).Unit }, stringCodec),
		scalar("system", func(t *T) **model.URI { return &q(t).System }, uriCodec),
		scalar("code", func(t *T) **model.Code { return &q(t).Code }, codeCodec),
	)
}

func (s *Schemas) defineDatatypes(fam *families) error {
	return errors.Join(
		s.Extension.Define(append(elementFields(s, func(e *model.Extension) *model.Element { return &e.Element }),
			scalar("url", func(e *model.Extension) **model.URI { return &e.URL }, uriCodec),
			oneOf("value", func(e *model.Extension) *model.Type { return &e.Value }, s.openVariants("Extension.value"), false),
		)...),

		s.Coding.Define(append(elementFields(s, func(c *model.Coding) *model.Element { return &c.Element }),
			scalar("system", func(c *model.Coding) **model.URI { return &c.System }, uriCodec),
			scalar("version", func(c *model.Coding) **model.String { return &c.Version }, stringCodec),
			scalar("code", func(c *model.Coding) **model.Code { return &c.Code }, codeCodec),
			scalar("display", func(c *model.Coding) **model.String { return &c.Display }, stringCodec),
			scalar("user_selected", func(c *model.Coding) **model.Boolean { return &c.UserSelected }, booleanCodec),
		)...),

		s.CodeableConcept.Define(append(elementFields(s, func(c *model.CodeableConcept) *model.Element { return &c.Element }),
			records("coding", func(c *model.CodeableConcept) *[]*model.Coding { return &c.Coding }, s.Coding),
			scalar("text", func(c *model.CodeableConcept) **model.String { return &c.Text }, stringCodec),
		)...),

		s.Identifier.Define(append(elementFields(s, func(i *model.Identifier) *model.Element { return &i.Element }),
			coded("use", func(i *model.Identifier) *model.IdentifierUse { return &i.Use }, fam.identifierUse),
			nested("type", func(i *model.Identifier) **model.CodeableConcept { return &i.Type }, s.CodeableConcept),
			scalar("system", func(i *model.Identifier) **model.URI { return &i.System }, uriCodec),
			scalar("value", func(i *model.Identifier) **model.String { return &i.Value }, stringCodec),
			nested("period", func(i *model.Identifier) **model.Period { return &i.Period }, s.Period),
			nested("assigner", func(i *model.Identifier) **model.Reference { return &i.Assigner }, s.Reference),
		)...),

		s.Reference.Define(append(elementFields(s, func(r *model.Reference) *model.Element { return &r.Element }),
			scalar("type", func(r *model.Reference) **model.URI { return &r.Type }, uriCodec),
			record.Choice("reference",
				func(r *model.Reference) (*model.String, bool) { return r.Reference, r.Reference != nil },
				func(r *model.Reference, v *model.String) { r.Reference = v },
				referenceRegistry(), false),
			nested("identifier", func(r *model.Reference) **model.Identifier { return &r.Identifier }, s.Identifier),
			scalar("display", func(r *model.Reference) **model.String { return &r.Display }, stringCodec),
		)...),

		s.Period.Define(append(elementFields(s, func(p *model.Period) *model.Element { return &p.Element }),
			scalar("start", func(p *model.Period) **model.DateTime { return &p.Start }, dateTimeCodec),
			scalar("end", func(p *model.Period) **model.DateTime { return &p.End }, dateTimeCodec),
		)...),

		s.Quantity.Define(quantityFields(s, fam, func(q *model.Quantity) *model.Quantity { return q })...),
		s.Age.Define(quantityFields(s, fam, func(a *model.Age) *model.Quantity { return &a.Quantity })...),
		s.Duration.Define(quantityFields(s, fam, func(d *model.Duration) *model.Quantity { return &d.Quantity })...),

		s.HumanName.Define(append(elementFields(s, func(n *model.HumanName) *model.Element { return &n.Element }),
			coded("use", func(n *model.HumanName) *model.NameUse { return &n.Use }, fam.nameUse),
			scalar("text", func(n *model.HumanName) **model.String { return &n.Text }, stringCodec),
			scalar("family", func(n *model.HumanName) **model.String { return &n.Family }, stringCodec),
			list("given", func(n *model.HumanName) *[]*model.String { return &n.Given }, stringCodec),
			list("prefix", func(n *model.HumanName) *[]*model.String { return &n.Prefix }, stringCodec),
			list("suffix", func(n *model.HumanName) *[]*model.String { return &n.Suffix }, stringCodec),
			nested("period", func(n *model.HumanName) **model.Period { return &n.Period }, s.Period),
		)...),

		s.Address.Define(append(elementFields(s, func(a *model.Address) *model.Element { return &a.Element }),
			coded("use", func(a *model.Address) *model.AddressUse { return &a.Use }, fam.addressUse),
			coded("type", func(a *model.Address) *model.AddressType { return &a.Type }, fam.addressType),
			scalar("text", func(a *model.Address) **model.String { return &a.Text }, stringCodec),
			list("line", func(a *model.Address) *[]*model.String { return &a.Line }, stringCodec),
			scalar("city", func(a *model.Address) **model.String { return &a.City }, stringCodec),
			scalar("district", func(a *model.Address) **model.String { return &a.District }, stringCodec),
			scalar("state", func(a *model.Address) **model.String { return &a.State }, stringCodec),
			scalar("postal_code", func(a *model.Address) **model.String { return &a.PostalCode }, stringCodec),
			scalar("country", func(a *model.Address) **model.String { return &a.Country }, stringCodec),
			nested("period", func(a *model.Address) **model.Period { return &a.Period }, s.Period),
		)...),

		s.ContactPoint.Define(append(elementFields(s, func(c *model.ContactPoint) *model.Element { return &c.Element }),
			coded("system", func(c *model.ContactPoint) *model.ContactPointSystem { return &c.System }, fam.contactSystem),
			scalar("value", func(c *model.ContactPoint) **model.String { return &c.Value }, stringCodec),
			coded("use", func(c *model.ContactPoint) *model.ContactPointUse { return &c.Use }, fam.contactUse),
			scalar("rank", func(c *model.ContactPoint) **model.PositiveInt { return &c.Rank }, positiveIntCodec),
			nested("period", func(c *model.ContactPoint) **model.Period { return &c.Period }, s.Period),
		)...),

		s.Annotation.Define(append(elementFields(s, func(a *model.Annotation) *model.Element { return &a.Element }),
			oneOf("author", func(a *model.Annotation) *model.Type { return &a.Author }, s.annotationAuthor(), false),
			scalar("time", func(a *model.Annotation) **model.DateTime { return &a.Time }, dateTimeCodec),
			scalar("text", func(a *model.Annotation) **model.Markdown { return &a.Text }, markdownCodec),
		)...),

		s.Meta.Define(append(elementFields(s, func(m *model.Meta) *model.Element { return &m.Element }),
			scalar("version_id", func(m *model.Meta) **model.ID { return &m.VersionID }, idCodec),
			scalar("last_updated", func(m *model.Meta) **model.Instant { return &m.LastUpdated }, instantCodec),
			scalar("source", func(m *model.Meta) **model.URI { return &m.Source }, uriCodec),
			list("profile", func(m *model.Meta) *[]*model.Canonical { return &m.Profile }, canonicalCodec),
			records("security", func(m *model.Meta) *[]*model.Coding { return &m.Security }, s.Coding),
			records("tag", func(m *model.Meta) *[]*model.Coding { return &m.Tag }, s.Coding),
		)...),
	)
}
