package fhirconv

import (
	"errors"
	"fmt"

	r4Datatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
	r4CR "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/bundle_and_contained_resource_go_proto"
	r4Obs "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/observation_go_proto"
	r4Patient "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/patient_go_proto"
	r4Task "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/task_go_proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/catalog"
	"fhir-caster/internal/choice"
	"fhir-caster/internal/code"
	"fhir-caster/internal/record"
	"fhir-caster/model"
)

// Schemas is the complete, bound set of record schemas. It is immutable once
// built and safe for concurrent use.
type Schemas struct {
	Extension       *record.Schema[model.Extension]
	Coding          *record.Schema[model.Coding]
	CodeableConcept *record.Schema[model.CodeableConcept]
	Identifier      *record.Schema[model.Identifier]
	Reference       *record.Schema[model.Reference]
	Period          *record.Schema[model.Period]
	Quantity        *record.Schema[model.Quantity]
	Age             *record.Schema[model.Age]
	Duration        *record.Schema[model.Duration]
	HumanName       *record.Schema[model.HumanName]
	Address         *record.Schema[model.Address]
	ContactPoint    *record.Schema[model.ContactPoint]
	Annotation      *record.Schema[model.Annotation]
	Meta            *record.Schema[model.Meta]

	Patient              *record.Schema[model.Patient]
	Observation          *record.Schema[model.Observation]
	ObservationComponent *record.Schema[model.ObservationComponent]
	Task                 *record.Schema[model.Task]
	TaskParameter        *record.Schema[model.TaskParameter]
	TaskOutput           *record.Schema[model.TaskOutput]

	contained *choice.Registry[model.Resource]
	oneof     protoreflect.OneofDescriptor
	catalog   *catalog.Set
}

// families are the code families the schemas use, by catalog name.
type families struct {
	gender, observationStatus, taskStatus, taskIntent, priority *code.Family
	identifierUse, nameUse, addressUse, addressType             *code.Family
	contactSystem, contactUse, comparator                       *code.Family
}

func lookupFamilies(set *catalog.Set) (*families, error) {
	var errs []error

	get := func(name string) *code.Family {
		f, ok := set.Family(name)
		if !ok {
			errs = append(errs, fmt.Errorf("catalog has no family %q", name))
		}

		return f
	}

	f := &families{
		gender:            get("AdministrativeGender"),
		observationStatus: get("ObservationStatus"),
		taskStatus:        get("TaskStatus"),
		taskIntent:        get("TaskIntent"),
		priority:          get("RequestPriority"),
		identifierUse:     get("IdentifierUse"),
		nameUse:           get("NameUse"),
		addressUse:        get("AddressUse"),
		addressType:       get("AddressType"),
		contactSystem:     get("ContactPointSystem"),
		contactUse:        get("ContactPointUse"),
		comparator:        get("QuantityComparator"),
	}

	return f, errors.Join(errs...)
}

// NewSchemas builds and binds every schema, taking code families from set.
func NewSchemas(set *catalog.Set) (*Schemas, error) {
	if set == nil {
		return nil, errors.New("code catalog is required")
	}

	fam, err := lookupFamilies(set)
	if err != nil {
		return nil, err
	}

	s := &Schemas{
		Extension:       record.Declare[model.Extension]("Extension", (*r4Datatypes.Extension)(nil)),
		Coding:          record.Declare[model.Coding]("Coding", (*r4Datatypes.Coding)(nil)),
		CodeableConcept: record.Declare[model.CodeableConcept]("CodeableConcept", (*r4Datatypes.CodeableConcept)(nil)),
		Identifier:      record.Declare[model.Identifier]("Identifier", (*r4Datatypes.Identifier)(nil)),
		Reference:       record.Declare[model.Reference]("Reference", (*r4Datatypes.Reference)(nil)),
		Period:          record.Declare[model.Period]("Period", (*r4Datatypes.Period)(nil)),
		Quantity:        record.Declare[model.Quantity]("Quantity", (*r4Datatypes.Quantity)(nil)),
		Age:             record.Declare[model.Age]("Age", (*r4Datatypes.Age)(nil)),
		Duration:        record.Declare[model.Duration]("Duration", (*r4Datatypes.Duration)(nil)),
		HumanName:       record.Declare[model.HumanName]("HumanName", (*r4Datatypes.HumanName)(nil)),
		Address:         record.Declare[model.Address]("Address", (*r4Datatypes.Address)(nil)),
		ContactPoint:    record.Declare[model.ContactPoint]("ContactPoint", (*r4Datatypes.ContactPoint)(nil)),
		Annotation:      record.Declare[model.Annotation]("Annotation", (*r4Datatypes.Annotation)(nil)),
		Meta:            record.Declare[model.Meta]("Meta", (*r4Datatypes.Meta)(nil)),

		Patient:              record.Declare[model.Patient]("Patient", (*r4Patient.Patient)(nil)),
		Observation:          record.Declare[model.Observation]("Observation", (*r4Obs.Observation)(nil)),
		ObservationComponent: record.Declare[model.ObservationComponent]("Observation.component", (*r4Obs.Observation_Component)(nil)),
		Task:                 record.Declare[model.Task]("Task", (*r4Task.Task)(nil)),
		TaskParameter:        record.Declare[model.TaskParameter]("Task.input", (*r4Task.Task_Parameter)(nil)),
		TaskOutput:           record.Declare[model.TaskOutput]("Task.output", (*r4Task.Task_Output)(nil)),

		oneof:   (*r4CR.ContainedResource)(nil).ProtoReflect().Descriptor().Oneofs().ByName("oneof_resource"),
		catalog: set,
	}

	if err := s.defineDatatypes(fam); err != nil {
		return nil, err
	}

	if err := s.defineResources(fam); err != nil {
		return nil, err
	}

	s.contained = s.containedResources()

	if _, err := s.contained.Bind(s.oneof); err != nil {
		return nil, err
	}

	return s, nil
}

// Record is the read-only view of a schema used for listings.
type Record interface {
	Name() string
	Descriptor() protoreflect.MessageDescriptor
	Fields() []record.FieldInfo
}

// Records returns every schema, datatypes first.
func (s *Schemas) Records() []Record {
	return []Record{
		s.Extension, s.Coding, s.CodeableConcept, s.Identifier, s.Reference,
		s.Period, s.Quantity, s.Age, s.Duration, s.HumanName, s.Address,
		s.ContactPoint, s.Annotation, s.Meta,
		s.Patient, s.Observation, s.ObservationComponent,
		s.Task, s.TaskParameter, s.TaskOutput,
	}
}

// Families returns the catalog families in declaration order. Families used
// by a code field are returned bound to that field's enum.
func (s *Schemas) Families() []*code.Family {
	bound := map[string]*code.Family{}

	for _, r := range s.Records() {
		for _, info := range r.Fields() {
			if info.Family != nil && info.Family.Enum() != nil {
				bound[info.Family.Name()] = info.Family
			}
		}
	}

	out := s.catalog.Families()
	for i, f := range out {
		if b, ok := bound[f.Name()]; ok {
			out[i] = b
		}
	}

	return out
}

// Resources lists the oneof members of ContainedResource that have a schema.
func (s *Schemas) Resources() []protoreflect.Name {
	return s.contained.Tags()
}
