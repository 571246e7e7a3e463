package fhirconv

import (
	"fmt"
	"sync"

	r4CR "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/bundle_and_contained_resource_go_proto"
	r4Obs "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/observation_go_proto"
	r4Patient "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/patient_go_proto"
	r4Task "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/task_go_proto"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/catalog"
	"fhir-caster/internal/choice"
	"fhir-caster/internal/code"
	"fhir-caster/internal/record"
	"fhir-caster/model"
)

var defaultSchemas = sync.OnceValue(func() *Schemas {
	s, err := NewSchemas(catalog.MustBuild(catalog.Default()))
	if err != nil {
		panic(fmt.Sprintf("fhirconv: built-in schemas: %v", err))
	}

	return s
})

// Default returns the schemas built from the built-in code catalog.
func Default() *Schemas {
	return defaultSchemas()
}

// Contain converts a resource into a ContainedResource. A nil resource,
// typed or not, gives a nil message.
func (s *Schemas) Contain(res model.Resource) (*r4CR.ContainedResource, error) {
	if !present(res) {
		return nil, nil
	}

	cr := &r4CR.ContainedResource{}
	if _, err := s.contained.Write(res, cr.ProtoReflect(), s.oneof); err != nil {
		return nil, err
	}

	return cr, nil
}

// Uncontain converts the resource held by a ContainedResource. A nil message
// gives a nil resource; an empty one fails with choice.ErrUnmatchedVariant.
func (s *Schemas) Uncontain(cr *r4CR.ContainedResource) (model.Resource, error) {
	if cr == nil {
		return nil, nil
	}

	res, ok, err := s.contained.Read(cr.ProtoReflect(), s.oneof)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, &choice.UnmatchedVariantError{Field: s.contained.Field()}
	}

	return res, nil
}

// Encode converts a resource into its resource message, e.g. *Patient.
func (s *Schemas) Encode(res model.Resource) (proto.Message, error) {
	cr, err := s.Contain(res)
	if err != nil || cr == nil {
		return nil, err
	}

	m := cr.ProtoReflect()

	return m.Get(m.WhichOneof(s.oneof)).Message().Interface(), nil
}

// Decode converts a resource message, or a ContainedResource, into a resource.
func (s *Schemas) Decode(msg proto.Message) (model.Resource, error) {
	if msg == nil {
		return nil, nil
	}

	if cr, ok := msg.(*r4CR.ContainedResource); ok {
		return s.Uncontain(cr)
	}

	m := msg.ProtoReflect()
	if !m.IsValid() {
		return nil, nil
	}

	fields := s.oneof.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.Message().FullName() != m.Descriptor().FullName() {
			continue
		}

		cr := &r4CR.ContainedResource{}
		cr.ProtoReflect().Set(fd, protoreflect.ValueOfMessage(m))

		return s.Uncontain(cr)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedResource, m.Descriptor().FullName())
}

// Encode converts a resource with the default schemas.
func Encode(res model.Resource) (proto.Message, error) {
	return Default().Encode(res)
}

// Decode converts a resource message with the default schemas.
func Decode(msg proto.Message) (model.Resource, error) {
	return Default().Decode(msg)
}

// Contain converts a resource into a ContainedResource with the default schemas.
func Contain(res model.Resource) (*r4CR.ContainedResource, error) {
	return Default().Contain(res)
}

// Uncontain converts a ContainedResource with the default schemas.
func Uncontain(cr *r4CR.ContainedResource) (model.Resource, error) {
	return Default().Uncontain(cr)
}

// Records lists the default schemas.
func Records() []Record {
	return Default().Records()
}

// Families lists the default code families.
func Families() []*code.Family {
	return Default().Families()
}

func PatientToProto(p *model.Patient) (*r4Patient.Patient, error) {
	return record.ToProtoAs[*r4Patient.Patient](Default().Patient, p)
}

func PatientFromProto(m *r4Patient.Patient) (*model.Patient, error) {
	return Default().Patient.FromProto(m)
}

func ObservationToProto(o *model.Observation) (*r4Obs.Observation, error) {
	return record.ToProtoAs[*r4Obs.Observation](Default().Observation, o)
}

func ObservationFromProto(m *r4Obs.Observation) (*model.Observation, error) {
	return Default().Observation.FromProto(m)
}

func TaskToProto(t *model.Task) (*r4Task.Task, error) {
	return record.ToProtoAs[*r4Task.Task](Default().Task, t)
}

func TaskFromProto(m *r4Task.Task) (*model.Task, error) {
	return Default().Task.FromProto(m)
}
