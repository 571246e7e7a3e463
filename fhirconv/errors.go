package fhirconv

import "errors"

var (
	// ErrUnsupportedPrecision is returned for a temporal precision the target
	// type cannot represent, e.g. a Date with second precision.
	ErrUnsupportedPrecision = errors.New("unsupported precision")
	// ErrTimezone is returned for a zone name that cannot be loaded.
	ErrTimezone = errors.New("invalid timezone")
	// ErrUnsupportedResource is returned for a resource type without a schema.
	ErrUnsupportedResource = errors.New("unsupported resource type")
)
