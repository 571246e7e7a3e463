package model

// Task is an activity to be performed and tracked.
type Task struct {
	DomainResource
	Identifier      []*Identifier    `json:"identifier,omitempty"`
	BasedOn         []*Reference     `json:"basedOn,omitempty"`
	Status          TaskStatus       `json:"status,omitempty"`
	BusinessStatus  *CodeableConcept `json:"businessStatus,omitempty"`
	Intent          TaskIntent       `json:"intent,omitempty"`
	Priority        RequestPriority  `json:"priority,omitempty"`
	Code            *CodeableConcept `json:"code,omitempty"`
	Description     *String          `json:"description,omitempty"`
	Focus           *Reference       `json:"focus,omitempty"`
	ExecutionPeriod *Period          `json:"executionPeriod,omitempty"`
	AuthoredOn      *DateTime        `json:"authoredOn,omitempty"`
	LastModified    *DateTime        `json:"lastModified,omitempty"`
	Requester       *Reference       `json:"requester,omitempty"`
	Owner           *Reference       `json:"owner,omitempty"`
	Note            []*Annotation    `json:"note,omitempty"`
	Input           []*TaskParameter `json:"input,omitempty"`
	Output          []*TaskOutput    `json:"output,omitempty"`
}

// TaskParameter is an input to a Task. Value is required.
type TaskParameter struct {
	Element
	Type  *CodeableConcept `json:"type,omitempty"`
	Value Type             `json:"value,omitempty"`
}

// TaskOutput is an output of a Task. Value is required.
type TaskOutput struct {
	Element
	Type  *CodeableConcept `json:"type,omitempty"`
	Value Type             `json:"value,omitempty"`
}

func (*Task) ResourceType() string { return "Task" }
func (*Task) isResource()          {}
