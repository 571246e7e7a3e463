package model

import (
	"strconv"
	"time"
)

// Precision is how much of a temporal value is significant.
type Precision int

const (
	PrecisionUnspecified Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
	PrecisionSecond
	PrecisionMillisecond
	PrecisionMicrosecond
)

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionSecond:
		return "second"
	case PrecisionMillisecond:
		return "millisecond"
	case PrecisionMicrosecond:
		return "microsecond"
	default:
		return "unspecified"
	}
}

// StringLike is implemented by String and every type embedding it.
type StringLike interface {
	Type
	StringValue() string
}

// URILike is implemented by URI and every type embedding it.
type URILike interface {
	Type
	URIValue() string
}

// IntegerLike is implemented by the integer types.
type IntegerLike interface {
	Type
	Int64() int64
}

type Boolean struct {
	Value bool `json:"value"`
}

type Integer struct {
	Value int32 `json:"value"`
}

type PositiveInt struct {
	Value uint32 `json:"value"`
}

type UnsignedInt struct {
	Value uint32 `json:"value"`
}

// Decimal keeps the exact decimal text, e.g. "1.50".
type Decimal struct {
	Value string `json:"value"`
}

// Float parses the decimal text.
func (d *Decimal) Float() (float64, error) {
	return strconv.ParseFloat(d.Value, 64)
}

type String struct {
	Value string `json:"value"`
}

type Code struct{ String }

type ID struct{ String }

type Markdown struct{ String }

type URI struct {
	Value string `json:"value"`
}

type URL struct{ URI }

type Canonical struct{ URI }

// OID is a urn:oid: URI.
type OID struct{ URI }

// UUID is a urn:uuid: URI.
type UUID struct{ URI }

// Base64Binary holds the decoded bytes.
type Base64Binary struct {
	Value []byte `json:"value"`
}

// Date is a calendar date with year, month or day precision.
type Date struct {
	Value     time.Time `json:"value"`
	Precision Precision `json:"precision"`
}

// DateTime is a point in time with year to microsecond precision.
type DateTime struct {
	Value     time.Time `json:"value"`
	Precision Precision `json:"precision"`
}

// Instant is a point in time with second to microsecond precision.
type Instant struct {
	Value     time.Time `json:"value"`
	Precision Precision `json:"precision"`
}

// Time is a time of day, as an offset from midnight.
type Time struct {
	Value     time.Duration `json:"value"`
	Precision Precision     `json:"precision"`
}

func (s *String) StringValue() string { return s.Value }
func (u *URI) URIValue() string       { return u.Value }

func (i *Integer) Int64() int64     { return int64(i.Value) }
func (i *PositiveInt) Int64() int64 { return int64(i.Value) }
func (i *UnsignedInt) Int64() int64 { return int64(i.Value) }

func (*Boolean) TypeName() string      { return "boolean" }
func (*Integer) TypeName() string      { return "integer" }
func (*PositiveInt) TypeName() string  { return "positiveInt" }
func (*UnsignedInt) TypeName() string  { return "unsignedInt" }
func (*Decimal) TypeName() string      { return "decimal" }
func (*String) TypeName() string       { return "string" }
func (*Code) TypeName() string         { return "code" }
func (*ID) TypeName() string           { return "id" }
func (*Markdown) TypeName() string     { return "markdown" }
func (*URI) TypeName() string          { return "uri" }
func (*URL) TypeName() string          { return "url" }
func (*Canonical) TypeName() string    { return "canonical" }
func (*OID) TypeName() string          { return "oid" }
func (*UUID) TypeName() string         { return "uuid" }
func (*Base64Binary) TypeName() string { return "base64Binary" }
func (*Date) TypeName() string         { return "date" }
func (*DateTime) TypeName() string     { return "dateTime" }
func (*Instant) TypeName() string      { return "instant" }
func (*Time) TypeName() string         { return "time" }

func (*Boolean) isType()      {}
func (*Integer) isType()      {}
func (*PositiveInt) isType()  {}
func (*UnsignedInt) isType()  {}
func (*Decimal) isType()      {}
func (*String) isType()       {}
func (*URI) isType()          {}
func (*Base64Binary) isType() {}
func (*Date) isType()         {}
func (*DateTime) isType()     {}
func (*Instant) isType()      {}
func (*Time) isType()         {}

func NewBoolean(v bool) *Boolean     { return &Boolean{Value: v} }
func NewInteger(v int32) *Integer    { return &Integer{Value: v} }
func NewDecimal(v string) *Decimal   { return &Decimal{Value: v} }
func NewString(v string) *String     { return &String{Value: v} }
func NewCode(v string) *Code         { return &Code{String{Value: v}} }
func NewID(v string) *ID             { return &ID{String{Value: v}} }
func NewMarkdown(v string) *Markdown { return &Markdown{String{Value: v}} }
func NewURI(v string) *URI           { return &URI{Value: v} }
func NewURL(v string) *URL           { return &URL{URI{Value: v}} }
func NewCanonical(v string) *Canonical {
	return &Canonical{URI{Value: v}}
}
func NewOID(v string) *OID                   { return &OID{URI{Value: v}} }
func NewUUID(v string) *UUID                 { return &UUID{URI{Value: v}} }
func NewBase64Binary(v []byte) *Base64Binary { return &Base64Binary{Value: v} }
