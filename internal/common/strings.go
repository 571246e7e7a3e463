// Package common holds small helpers shared by the internal packages.
package common

// UnknownStr is what String methods return for out-of-range values.
const UnknownStr = "unknown"
