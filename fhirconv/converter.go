package fhirconv

import (
	"errors"
	"fmt"

	"github.com/google/fhir/go/fhirversion"
	"github.com/google/fhir/go/jsonformat"
	r4CR "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/bundle_and_contained_resource_go_proto"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/testing/protocmp"

	"fhir-caster/model"
)

// Options configures a Converter.
type Options struct {
	// Timezone is the zone jsonformat assumes for values without one.
	Timezone string
	// Indent pretty-prints FHIR JSON output.
	Indent bool
	// Logger receives debug events for every conversion.
	Logger zerolog.Logger
}

// Converter converts between FHIR R4 JSON, the protocol buffers and the model.
type Converter struct {
	schemas      *Schemas
	log          zerolog.Logger
	unmarshaller *jsonformat.Unmarshaller
	marshaller   *jsonformat.Marshaller
}

// NewConverter creates a converter over the given schemas.
func NewConverter(schemas *Schemas, opts Options) (*Converter, error) {
	if schemas == nil {
		return nil, errors.New("schemas are required")
	}

	tz := opts.Timezone
	if tz == "" {
		tz = "UTC"
	}

	unmarshaller, err := jsonformat.NewUnmarshaller(tz, fhirversion.R4)
	if err != nil {
		return nil, fmt.Errorf("failed to create FHIR JSON unmarshaller: %w", err)
	}

	indent := ""
	if opts.Indent {
		indent = "  "
	}

	marshaller, err := jsonformat.NewMarshaller(opts.Indent, "", indent, fhirversion.R4)
	if err != nil {
		return nil, fmt.Errorf("failed to create FHIR JSON marshaller: %w", err)
	}

	return &Converter{
		schemas:      schemas,
		log:          opts.Logger,
		unmarshaller: unmarshaller,
		marshaller:   marshaller,
	}, nil
}

// Schemas returns the converter's schemas.
func (c *Converter) Schemas() *Schemas { return c.schemas }

// ParseJSON parses a FHIR R4 JSON resource.
func (c *Converter) ParseJSON(data []byte) (*r4CR.ContainedResource, error) {
	msg, err := c.unmarshaller.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FHIR JSON: %w", err)
	}

	cr, ok := msg.(*r4CR.ContainedResource)
	if !ok {
		return nil, fmt.Errorf("%w: parsed %T", ErrUnsupportedResource, msg)
	}

	return cr, nil
}

// FormatJSON renders a ContainedResource as FHIR R4 JSON.
func (c *Converter) FormatJSON(cr *r4CR.ContainedResource) ([]byte, error) {
	data, err := c.marshaller.Marshal(cr)
	if err != nil {
		return nil, fmt.Errorf("failed to render FHIR JSON: %w", err)
	}

	return data, nil
}

// ToModel converts a ContainedResource into a resource.
func (c *Converter) ToModel(cr *r4CR.ContainedResource) (model.Resource, error) {
	res, err := c.schemas.Uncontain(cr)
	if err != nil {
		c.log.Debug().Err(err).Msg("decode failed")
		return nil, err
	}

	if res != nil {
		c.log.Debug().Str("resource", res.ResourceType()).Msg("decoded")
	}

	return res, nil
}

// ToProto converts a resource into a ContainedResource.
func (c *Converter) ToProto(res model.Resource) (*r4CR.ContainedResource, error) {
	cr, err := c.schemas.Contain(res)
	if err != nil {
		c.log.Debug().Err(err).Msg("encode failed")
		return nil, err
	}

	if cr != nil {
		c.log.Debug().Str("resource", res.ResourceType()).Msg("encoded")
	}

	return cr, nil
}

// DecodeJSON parses FHIR R4 JSON and converts it into a resource.
func (c *Converter) DecodeJSON(data []byte) (model.Resource, error) {
	cr, err := c.ParseJSON(data)
	if err != nil {
		return nil, err
	}

	return c.ToModel(cr)
}

// EncodeJSON converts a resource and renders it as FHIR R4 JSON.
func (c *Converter) EncodeJSON(res model.Resource) ([]byte, error) {
	cr, err := c.ToProto(res)
	if err != nil {
		return nil, err
	}

	if cr == nil {
		return nil, errors.New("nothing to encode")
	}

	return c.FormatJSON(cr)
}

// RoundTrip converts cr to the model and back. It returns the difference
// between cr and the result, empty when the round trip is lossless.
// Primitive ids and extensions are outside the model and show up as
// differences.
func (c *Converter) RoundTrip(cr *r4CR.ContainedResource) (string, error) {
	res, err := c.ToModel(cr)
	if err != nil {
		return "", err
	}

	back, err := c.ToProto(res)
	if err != nil {
		return "", err
	}

	diff := cmp.Diff(cr, back, protocmp.Transform())
	if diff != "" {
		c.log.Debug().Str("resource", res.ResourceType()).Msg("round trip differs")
	}

	return diff, nil
}
