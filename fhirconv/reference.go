package fhirconv

import (
	"regexp"
	"strings"

	r4Datatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/choice"
	"fhir-caster/internal/code"
	"fhir-caster/internal/record"
	"fhir-caster/model"
)

// relativePattern matches "Type/id" and "Type/id/_history/version".
var relativePattern = regexp.MustCompile(`^([A-Z][A-Za-z]+)/([A-Za-z0-9\-.]{1,64})(?:/_history/([A-Za-z0-9\-.]{1,64}))?$`)

type relative struct {
	resource string
	id       string
	version  string
}

func parseRelative(s string) (relative, bool) {
	m := relativePattern.FindStringSubmatch(s)
	if m == nil {
		return relative{}, false
	}

	return relative{resource: m[1], id: m[2], version: m[3]}, true
}

func (r relative) String() string {
	s := r.resource + "/" + r.id
	if r.version != "" {
		s += "/_history/" + r.version
	}

	return s
}

// referenceRegistry resolves Reference.reference text onto the oneof members
// of google.fhir.r4.core.Reference: a fragment first, then one typed id per
// resource type in oneof order, then uri for everything else.
func referenceRegistry() *choice.Registry[*model.String] {
	od := (*r4Datatypes.Reference)(nil).ProtoReflect().Descriptor().Oneofs().ByName("reference")
	idType := (*r4Datatypes.ReferenceId)(nil).ProtoReflect().Descriptor().FullName()

	variants := []choice.Variant[*model.String]{
		record.VariantFunc("fragment", isFragment, fragmentCodec),
	}

	fields := od.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.Message() == nil || fd.Message().FullName() != idType {
			continue
		}

		resource := code.UpperCamel(code.Words(strings.TrimSuffix(string(fd.Name()), "_id"), "", false))
		if referenceMember(resource) != fd.Name() {
			// the member name does not spell back to a resource type
			continue
		}

		variants = append(variants, record.VariantFunc(fd.Name(), isRelativeTo(resource), referenceIDCodec(resource)))
	}

	variants = append(variants, record.VariantFunc("uri", func(*model.String) bool { return true }, stringCodec))

	return choice.MustNew("Reference.reference", variants...)
}

func isFragment(s *model.String) bool {
	return strings.HasPrefix(s.Value, "#")
}

func isRelativeTo(resource string) func(*model.String) bool {
	return func(s *model.String) bool {
		r, ok := parseRelative(s.Value)
		return ok && r.resource == resource
	}
}

var fragmentCodec = record.Message(
	func(v *model.String, m *r4Datatypes.String) error {
		m.Value = strings.TrimPrefix(v.Value, "#")
		return nil
	},
	func(m *r4Datatypes.String) (*model.String, error) {
		return model.NewString("#" + m.GetValue()), nil
	},
)

func referenceIDCodec(resource string) record.Codec[*model.String] {
	return record.Message(
		func(v *model.String, m *r4Datatypes.ReferenceId) error {
			r, _ := parseRelative(v.Value)
			m.Value = r.id

			if r.version != "" {
				m.History = &r4Datatypes.Id{Value: r.version}
			}

			return nil
		},
		func(m *r4Datatypes.ReferenceId) (*model.String, error) {
			r := relative{resource: resource, id: m.GetValue(), version: m.GetHistory().GetValue()}
			return model.NewString(r.String()), nil
		},
	)
}

// referenceMember is the oneof member name used for a relative reference to
// the given resource type, e.g. "Patient" -> "patient_id".
func referenceMember(resource string) protoreflect.Name {
	return protoreflect.Name(code.Snake(resource) + "_id")
}
