package fhirconv

import (
	"time"

	r4Datatypes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"

	"fhir-caster/internal/record"
	"fhir-caster/model"
)

var (
	datePrecision = newPrecisionTable("date", map[model.Precision]r4Datatypes.Date_Precision{
		model.PrecisionYear:  r4Datatypes.Date_YEAR,
		model.PrecisionMonth: r4Datatypes.Date_MONTH,
		model.PrecisionDay:   r4Datatypes.Date_DAY,
	})
	dateTimePrecision = newPrecisionTable("dateTime", map[model.Precision]r4Datatypes.DateTime_Precision{
		model.PrecisionYear:        r4Datatypes.DateTime_YEAR,
		model.PrecisionMonth:       r4Datatypes.DateTime_MONTH,
		model.PrecisionDay:         r4Datatypes.DateTime_DAY,
		model.PrecisionSecond:      r4Datatypes.DateTime_SECOND,
		model.PrecisionMillisecond: r4Datatypes.DateTime_MILLISECOND,
		model.PrecisionMicrosecond: r4Datatypes.DateTime_MICROSECOND,
	})
	instantPrecision = newPrecisionTable("instant", map[model.Precision]r4Datatypes.Instant_Precision{
		model.PrecisionSecond:      r4Datatypes.Instant_SECOND,
		model.PrecisionMillisecond: r4Datatypes.Instant_MILLISECOND,
		model.PrecisionMicrosecond: r4Datatypes.Instant_MICROSECOND,
	})
	timePrecision = newPrecisionTable("time", map[model.Precision]r4Datatypes.Time_Precision{
		model.PrecisionSecond:      r4Datatypes.Time_SECOND,
		model.PrecisionMillisecond: r4Datatypes.Time_MILLISECOND,
		model.PrecisionMicrosecond: r4Datatypes.Time_MICROSECOND,
	})
)

// Primitive sub-converters. Primitive ids and extensions are not part of the
// model and are dropped.
var (
	booleanCodec = record.Message(
		func(v *model.Boolean, m *r4Datatypes.Boolean) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Boolean) (*model.Boolean, error) {
			return &model.Boolean{Value: m.GetValue()}, nil
		},
	)
	integerCodec = record.Message(
		func(v *model.Integer, m *r4Datatypes.Integer) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Integer) (*model.Integer, error) {
			return &model.Integer{Value: m.GetValue()}, nil
		},
	)
	positiveIntCodec = record.Message(
		func(v *model.PositiveInt, m *r4Datatypes.PositiveInt) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.PositiveInt) (*model.PositiveInt, error) {
			return &model.PositiveInt{Value: m.GetValue()}, nil
		},
	)
	unsignedIntCodec = record.Message(
		func(v *model.UnsignedInt, m *r4Datatypes.UnsignedInt) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.UnsignedInt) (*model.UnsignedInt, error) {
			return &model.UnsignedInt{Value: m.GetValue()}, nil
		},
	)
	decimalCodec = record.Message(
		func(v *model.Decimal, m *r4Datatypes.Decimal) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Decimal) (*model.Decimal, error) {
			return &model.Decimal{Value: m.GetValue()}, nil
		},
	)
	stringCodec = record.Message(
		func(v *model.String, m *r4Datatypes.String) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.String) (*model.String, error) {
			return model.NewString(m.GetValue()), nil
		},
	)
	codeCodec = record.Message(
		func(v *model.Code, m *r4Datatypes.Code) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Code) (*model.Code, error) {
			return model.NewCode(m.GetValue()), nil
		},
	)
	idCodec = record.Message(
		func(v *model.ID, m *r4Datatypes.Id) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Id) (*model.ID, error) {
			return model.NewID(m.GetValue()), nil
		},
	)
	markdownCodec = record.Message(
		func(v *model.Markdown, m *r4Datatypes.Markdown) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Markdown) (*model.Markdown, error) {
			return model.NewMarkdown(m.GetValue()), nil
		},
	)
	uriCodec = record.Message(
		func(v *model.URI, m *r4Datatypes.Uri) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Uri) (*model.URI, error) {
			return model.NewURI(m.GetValue()), nil
		},
	)
	urlCodec = record.Message(
		func(v *model.URL, m *r4Datatypes.Url) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Url) (*model.URL, error) {
			return model.NewURL(m.GetValue()), nil
		},
	)
	canonicalCodec = record.Message(
		func(v *model.Canonical, m *r4Datatypes.Canonical) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Canonical) (*model.Canonical, error) {
			return model.NewCanonical(m.GetValue()), nil
		},
	)
	oidCodec = record.Message(
		func(v *model.OID, m *r4Datatypes.Oid) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Oid) (*model.OID, error) {
			return model.NewOID(m.GetValue()), nil
		},
	)
	uuidCodec = record.Message(
		func(v *model.UUID, m *r4Datatypes.Uuid) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Uuid) (*model.UUID, error) {
			return model.NewUUID(m.GetValue()), nil
		},
	)
	base64BinaryCodec = record.Message(
		func(v *model.Base64Binary, m *r4Datatypes.Base64Binary) error {
			m.Value = v.Value
			return nil
		},
		func(m *r4Datatypes.Base64Binary) (*model.Base64Binary, error) {
			return model.NewBase64Binary(m.GetValue()), nil
		},
	)
	dateCodec = record.Message(
		func(v *model.Date, m *r4Datatypes.Date) error {
			p, err := datePrecision.encode(v.Precision)
			if err != nil {
				return err
			}

			m.ValueUs = v.Value.UnixMicro()
			m.Timezone = zoneName(v.Value)
			m.Precision = p

			return nil
		},
		func(m *r4Datatypes.Date) (*model.Date, error) {
			p, err := datePrecision.decode(m.GetPrecision())
			if err != nil {
				return nil, err
			}

			t, err := timestamp(m.GetValueUs(), m.GetTimezone())
			if err != nil {
				return nil, err
			}

			return &model.Date{Value: t, Precision: p}, nil
		},
	)
	dateTimeCodec = record.Message(
		func(v *model.DateTime, m *r4Datatypes.DateTime) error {
			p, err := dateTimePrecision.encode(v.Precision)
			if err != nil {
				return err
			}

			m.ValueUs = v.Value.UnixMicro()
			m.Timezone = zoneName(v.Value)
			m.Precision = p

			return nil
		},
		func(m *r4Datatypes.DateTime) (*model.DateTime, error) {
			p, err := dateTimePrecision.decode(m.GetPrecision())
			if err != nil {
				return nil, err
			}

			t, err := timestamp(m.GetValueUs(), m.GetTimezone())
			if err != nil {
				return nil, err
			}

			return &model.DateTime{Value: t, Precision: p}, nil
		},
	)
	instantCodec = record.Message(
		func(v *model.Instant, m *r4Datatypes.Instant) error {
			p, err := instantPrecision.encode(v.Precision)
			if err != nil {
				return err
			}

			m.ValueUs = v.Value.UnixMicro()
			m.Timezone = zoneName(v.Value)
			m.Precision = p

			return nil
		},
		func(m *r4Datatypes.Instant) (*model.Instant, error) {
			p, err := instantPrecision.decode(m.GetPrecision())
			if err != nil {
				return nil, err
			}

			t, err := timestamp(m.GetValueUs(), m.GetTimezone())
			if err != nil {
				return nil, err
			}

			return &model.Instant{Value: t, Precision: p}, nil
		},
	)
	timeCodec = record.Message(
		func(v *model.Time, m *r4Datatypes.Time) error {
			p, err := timePrecision.encode(v.Precision)
			if err != nil {
				return err
			}

			m.ValueUs = v.Value.Microseconds()
			m.Precision = p

			return nil
		},
		func(m *r4Datatypes.Time) (*model.Time, error) {
			p, err := timePrecision.decode(m.GetPrecision())
			if err != nil {
				return nil, err
			}

			return &model.Time{Value: time.Duration(m.GetValueUs()) * time.Microsecond, Precision: p}, nil
		},
	)
)
