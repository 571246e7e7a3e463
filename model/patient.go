package model

// Patient is a person receiving care.
type Patient struct {
	DomainResource
	Identifier           []*Identifier        `json:"identifier,omitempty"`
	Active               *Boolean             `json:"active,omitempty"`
	Name                 []*HumanName         `json:"name,omitempty"`
	Telecom              []*ContactPoint      `json:"telecom,omitempty"`
	Gender               AdministrativeGender `json:"gender,omitempty"`
	BirthDate            *Date                `json:"birthDate,omitempty"`
	Deceased             Type                 `json:"deceased,omitempty"` // *Boolean or *DateTime
	Address              []*Address           `json:"address,omitempty"`
	MaritalStatus        *CodeableConcept     `json:"maritalStatus,omitempty"`
	MultipleBirth        Type                 `json:"multipleBirth,omitempty"` // *Boolean or *Integer
	GeneralPractitioner  []*Reference         `json:"generalPractitioner,omitempty"`
	ManagingOrganization *Reference           `json:"managingOrganization,omitempty"`
}

func (*Patient) ResourceType() string { return "Patient" }
func (*Patient) isResource()          {}
