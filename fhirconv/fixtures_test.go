package fhirconv

import (
	"time"

	"fhir-caster/model"
)

var (
	plusOne  = time.FixedZone("+01:00", 3600)
	authored = &model.DateTime{Value: time.Date(2021, 3, 4, 10, 20, 30, 0, plusOne), Precision: model.PrecisionSecond}
)

func loinc(code, display string) *model.CodeableConcept {
	return &model.CodeableConcept{
		Coding: []*model.Coding{{
			System:  model.NewURI("http://loinc.org"),
			Code:    model.NewCode(code),
			Display: model.NewString(display),
		}},
	}
}

func ref(s string) *model.Reference {
	return &model.Reference{Reference: model.NewString(s)}
}

func samplePatient() *model.Patient {
	return &model.Patient{
		DomainResource: model.DomainResource{
			ID: model.NewID("p1"),
			Meta: &model.Meta{
				VersionID:   model.NewID("3"),
				LastUpdated: &model.Instant{Value: time.Date(2021, 3, 4, 9, 0, 0, 123000000, time.UTC), Precision: model.PrecisionMillisecond},
				Profile:     []*model.Canonical{model.NewCanonical("http://example.org/StructureDefinition/p")},
			},
			Extension: []*model.Extension{{
				URL:   model.NewURI("http://example.org/ext/nickname-code"),
				Value: model.NewCode("bob"),
			}},
		},
		Identifier: []*model.Identifier{{
			Use:    model.IdentifierOfficial,
			System: model.NewURI("urn:oid:1.2.36.146.595.217.0.1"),
			Value:  model.NewString("12345"),
		}},
		Active: model.NewBoolean(true),
		Name: []*model.HumanName{{
			Use:    model.NameOfficial,
			Family: model.NewString("Chalmers"),
			Given:  []*model.String{model.NewString("Peter"), model.NewString("James"), model.NewString("Jim")},
		}},
		Telecom: []*model.ContactPoint{{
			System: model.ContactPhone,
			Value:  model.NewString("(03) 5555 6473"),
			Use:    model.ContactWork,
			Rank:   &model.PositiveInt{Value: 1},
		}},
		Gender:    model.GenderMale,
		BirthDate: &model.Date{Value: time.Date(1974, 12, 25, 0, 0, 0, 0, time.UTC), Precision: model.PrecisionDay},
		Deceased:  model.NewBoolean(false),
		Address: []*model.Address{{
			Use:        model.AddressHome,
			Type:       model.AddressBoth,
			Line:       []*model.String{model.NewString("534 Erewhon St")},
			City:       model.NewString("PleasantVille"),
			PostalCode: model.NewString("3999"),
		}},
		MultipleBirth:        model.NewInteger(2),
		GeneralPractitioner:  []*model.Reference{ref("Practitioner/pr1")},
		ManagingOrganization: ref("Organization/1"),
	}
}

func sampleObservation() *model.Observation {
	return &model.Observation{
		DomainResource: model.DomainResource{ID: model.NewID("o1")},
		Status:         model.ObservationFinal,
		Category:       []*model.CodeableConcept{{Text: model.NewString("vital-signs")}},
		Code:           loinc("29463-7", "Body weight"),
		Subject:        ref("Patient/p1"),
		Effective:      authored,
		Value: &model.Quantity{
			Value:  model.NewDecimal("72.50"),
			Unit:   model.NewString("kg"),
			System: model.NewURI("http://unitsofmeasure.org"),
			Code:   model.NewCode("kg"),
		},
		Note: []*model.Annotation{{
			Author: ref("Practitioner/pr1"),
			Text:   model.NewMarkdown("after *breakfast*"),
		}},
		Component: []*model.ObservationComponent{
			{Code: loinc("8480-6", "Systolic"), Value: &model.Quantity{Value: model.NewDecimal("120"), Comparator: model.ComparatorLess}},
			{Code: loinc("8462-4", "Diastolic"), Value: model.NewString("not measured")},
		},
	}
}

func sampleTask() *model.Task {
	return &model.Task{
		DomainResource: model.DomainResource{ID: model.NewID("t1")},
		Status:         model.TaskInProgress,
		Intent:         model.IntentOrder,
		Priority:       model.PriorityASAP,
		Description:    model.NewString("review results"),
		Focus:          ref("Observation/o1"),
		AuthoredOn:     authored,
		Owner:          ref("#owner"),
		Input: []*model.TaskParameter{
			{Type: &model.CodeableConcept{Text: model.NewString("a")}, Value: model.NewString("first")},
			{Type: &model.CodeableConcept{Text: model.NewString("b")}, Value: &model.Age{Quantity: model.Quantity{Value: model.NewDecimal("42"), Code: model.NewCode("a")}}},
			{Type: &model.CodeableConcept{Text: model.NewString("c")}, Value: ref("https://example.org/fhir/Patient/1")},
		},
		Output: []*model.TaskOutput{
			{Type: &model.CodeableConcept{Text: model.NewString("done")}, Value: model.NewBoolean(true)},
		},
	}
}
