package fhirconv

import (
	"fmt"
	"strconv"
	"time"
	// Zone names in FHIR data must resolve on hosts without a zoneinfo database.
	_ "time/tzdata"

	"fhir-caster/model"
)

// precisionTable maps model precisions onto one proto precision enum.
type precisionTable[P ~int32] struct {
	name      string
	toProto   map[model.Precision]P
	fromProto map[P]model.Precision
}

func newPrecisionTable[P ~int32](name string, pairs map[model.Precision]P) *precisionTable[P] {
	t := &precisionTable[P]{
		name:      name,
		toProto:   make(map[model.Precision]P, len(pairs)+1),
		fromProto: make(map[P]model.Precision, len(pairs)+1),
	}

	// Zero is PRECISION_UNSPECIFIED in every temporal type.
	t.toProto[model.PrecisionUnspecified] = 0
	t.fromProto[0] = model.PrecisionUnspecified

	for p, v := range pairs {
		t.toProto[p] = v
		t.fromProto[v] = p
	}

	return t
}

func (t *precisionTable[P]) encode(p model.Precision) (P, error) {
	v, ok := t.toProto[p]
	if !ok {
		return 0, fmt.Errorf("%w: %s with %s precision", ErrUnsupportedPrecision, t.name, p)
	}

	return v, nil
}

func (t *precisionTable[P]) decode(v P) (model.Precision, error) {
	p, ok := t.fromProto[v]
	if !ok {
		return 0, fmt.Errorf("%w: %s precision %d", ErrUnsupportedPrecision, t.name, v)
	}

	return p, nil
}

// zoneName returns the zone recorded with a timestamp.
func zoneName(t time.Time) string {
	if t.Location() == time.Local {
		return t.Format("-07:00")
	}

	return t.Location().String()
}

// loadZone resolves a recorded zone name. Offsets ("+01:00", "Z") and the
// empty name become fixed zones with the same name so they are written back
// unchanged.
func loadZone(name string) (*time.Location, error) {
	if name == "UTC" {
		return time.UTC, nil
	}

	if offset, ok := parseOffset(name); ok {
		return time.FixedZone(name, offset), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrTimezone, name, err)
	}

	return loc, nil
}

// parseOffset parses "", "Z" and "+hh:mm"/"-hh:mm" into seconds east of UTC.
func parseOffset(s string) (int, bool) {
	if s == "" || s == "Z" {
		return 0, true
	}

	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, false
	}

	hh, err := strconv.Atoi(s[1:3])
	if err != nil || hh > 23 {
		return 0, false
	}

	mm, err := strconv.Atoi(s[4:6])
	if err != nil || mm > 59 {
		return 0, false
	}

	offset := hh*3600 + mm*60
	if s[0] == '-' {
		offset = -offset
	}

	return offset, true
}

// timestamp rebuilds a time from microseconds since the epoch and a zone name.
func timestamp(us int64, zone string) (time.Time, error) {
	loc, err := loadZone(zone)
	if err != nil {
		return time.Time{}, err
	}

	return time.UnixMicro(us).In(loc), nil
}
