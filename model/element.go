package model

// Element carries the id and extensions shared by every complex datatype.
type Element struct {
	ID        *String      `json:"id,omitempty"`
	Extension []*Extension `json:"extension,omitempty"`
}

// Type is a value that can populate a choice field.
type Type interface {
	// TypeName returns the FHIR datatype name, e.g. "dateTime".
	TypeName() string
	isType()
}

// Resource is a FHIR resource.
type Resource interface {
	// ResourceType returns the FHIR resource type, e.g. "Patient".
	ResourceType() string
	isResource()
}

// DomainResource holds the fields shared by the resources of this package.
type DomainResource struct {
	ID        *ID          `json:"id,omitempty"`
	Meta      *Meta        `json:"meta,omitempty"`
	Language  *Code        `json:"language,omitempty"`
	Extension []*Extension `json:"extension,omitempty"`
}

// Extension is an additional element with a URL and an optional value.
type Extension struct {
	Element
	URL   *URI `json:"url,omitempty"`
	Value Type `json:"value,omitempty"`
}
