package model

// QuantityLike is implemented by Quantity and every type embedding it.
type QuantityLike interface {
	Type
	AsQuantity() *Quantity
}

type Coding struct {
	Element
	System       *URI     `json:"system,omitempty"`
	Version      *String  `json:"version,omitempty"`
	Code         *Code    `json:"code,omitempty"`
	Display      *String  `json:"display,omitempty"`
	UserSelected *Boolean `json:"userSelected,omitempty"`
}

type CodeableConcept struct {
	Element
	Coding []*Coding `json:"coding,omitempty"`
	Text   *String   `json:"text,omitempty"`
}

type Identifier struct {
	Element
	Use      IdentifierUse    `json:"use,omitempty"`
	Type     *CodeableConcept `json:"type,omitempty"`
	System   *URI             `json:"system,omitempty"`
	Value    *String          `json:"value,omitempty"`
	Period   *Period          `json:"period,omitempty"`
	Assigner *Reference       `json:"assigner,omitempty"`
}

// Reference points at another resource. Reference holds a relative
// ("Patient/123"), absolute or fragment ("#p1") reference.
type Reference struct {
	Element
	Reference  *String     `json:"reference,omitempty"`
	Type       *URI        `json:"type,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty"`
	Display    *String     `json:"display,omitempty"`
}

type Period struct {
	Element
	Start *DateTime `json:"start,omitempty"`
	End   *DateTime `json:"end,omitempty"`
}

type Quantity struct {
	Element
	Value      *Decimal           `json:"value,omitempty"`
	Comparator QuantityComparator `json:"comparator,omitempty"`
	Unit       *String            `json:"unit,omitempty"`
	System     *URI               `json:"system,omitempty"`
	Code       *Code              `json:"code,omitempty"`
}

type Age struct{ Quantity }

type Duration struct{ Quantity }

type HumanName struct {
	Element
	Use    NameUse   `json:"use,omitempty"`
	Text   *String   `json:"text,omitempty"`
	Family *String   `json:"family,omitempty"`
	Given  []*String `json:"given,omitempty"`
	Prefix []*String `json:"prefix,omitempty"`
	Suffix []*String `json:"suffix,omitempty"`
	Period *Period   `json:"period,omitempty"`
}

type Address struct {
	Element
	Use        AddressUse  `json:"use,omitempty"`
	Type       AddressType `json:"type,omitempty"`
	Text       *String     `json:"text,omitempty"`
	Line       []*String   `json:"line,omitempty"`
	City       *String     `json:"city,omitempty"`
	District   *String     `json:"district,omitempty"`
	State      *String     `json:"state,omitempty"`
	PostalCode *String     `json:"postalCode,omitempty"`
	Country    *String     `json:"country,omitempty"`
	Period     *Period     `json:"period,omitempty"`
}

type ContactPoint struct {
	Element
	System ContactPointSystem `json:"system,omitempty"`
	Value  *String            `json:"value,omitempty"`
	Use    ContactPointUse    `json:"use,omitempty"`
	Rank   *PositiveInt       `json:"rank,omitempty"`
	Period *Period            `json:"period,omitempty"`
}

// Annotation is a text note. Author is a *Reference or a *String.
type Annotation struct {
	Element
	Author Type      `json:"author,omitempty"`
	Time   *DateTime `json:"time,omitempty"`
	Text   *Markdown `json:"text,omitempty"`
}

type Meta struct {
	Element
	VersionID   *ID          `json:"versionId,omitempty"`
	LastUpdated *Instant     `json:"lastUpdated,omitempty"`
	Source      *URI         `json:"source,omitempty"`
	Profile     []*Canonical `json:"profile,omitempty"`
	Security    []*Coding    `json:"security,omitempty"`
	Tag         []*Coding    `json:"tag,omitempty"`
}

func (q *Quantity) AsQuantity() *Quantity { return q }

func (*Extension) TypeName() string       { return "Extension" }
func (*Coding) TypeName() string          { return "Coding" }
func (*CodeableConcept) TypeName() string { return "CodeableConcept" }
func (*Identifier) TypeName() string      { return "Identifier" }
func (*Reference) TypeName() string       { return "Reference" }
func (*Period) TypeName() string          { return "Period" }
func (*Quantity) TypeName() string        { return "Quantity" }
func (*Age) TypeName() string             { return "Age" }
func (*Duration) TypeName() string        { return "Duration" }
func (*HumanName) TypeName() string       { return "HumanName" }
func (*Address) TypeName() string         { return "Address" }
func (*ContactPoint) TypeName() string    { return "ContactPoint" }
func (*Annotation) TypeName() string      { return "Annotation" }
func (*Meta) TypeName() string            { return "Meta" }

func (*Extension) isType()       {}
func (*Coding) isType()          {}
func (*CodeableConcept) isType() {}
func (*Identifier) isType()      {}
func (*Reference) isType()       {}
func (*Period) isType()          {}
func (*Quantity) isType()        {}
func (*HumanName) isType()       {}
func (*Address) isType()         {}
func (*ContactPoint) isType()    {}
func (*Annotation) isType()      {}
func (*Meta) isType()            {}
