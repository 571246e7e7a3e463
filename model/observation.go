package model

// Observation is a measurement or simple assertion about a subject.
type Observation struct {
	DomainResource
	Identifier     []*Identifier           `json:"identifier,omitempty"`
	BasedOn        []*Reference            `json:"basedOn,omitempty"`
	Status         ObservationStatus       `json:"status,omitempty"`
	Category       []*CodeableConcept      `json:"category,omitempty"`
	Code           *CodeableConcept        `json:"code,omitempty"`
	Subject        *Reference              `json:"subject,omitempty"`
	Encounter      *Reference              `json:"encounter,omitempty"`
	Effective      Type                    `json:"effective,omitempty"`
	Issued         *Instant                `json:"issued,omitempty"`
	Performer      []*Reference            `json:"performer,omitempty"`
	Value          Type                    `json:"value,omitempty"`
	Interpretation []*CodeableConcept      `json:"interpretation,omitempty"`
	Note           []*Annotation           `json:"note,omitempty"`
	BodySite       *CodeableConcept        `json:"bodySite,omitempty"`
	Method         *CodeableConcept        `json:"method,omitempty"`
	HasMember      []*Reference            `json:"hasMember,omitempty"`
	DerivedFrom    []*Reference            `json:"derivedFrom,omitempty"`
	Component      []*ObservationComponent `json:"component,omitempty"`
}

// ObservationComponent is one component result of an Observation.
type ObservationComponent struct {
	Element
	Code             *CodeableConcept   `json:"code,omitempty"`
	Value            Type               `json:"value,omitempty"`
	DataAbsentReason *CodeableConcept   `json:"dataAbsentReason,omitempty"`
	Interpretation   []*CodeableConcept `json:"interpretation,omitempty"`
}

func (*Observation) ResourceType() string { return "Observation" }
func (*Observation) isResource()          {}
