// Package diagnostic provides structured errors, warnings and notes produced
// while validating the code catalog and checking schemas.
//
// Key capabilities:
//   - Severity-ranked diagnostics with stable codes
//   - Subject (family or record) and path (code or field) attribution
//   - Merging results from several passes
//   - Collapsing errors into a single error value
package diagnostic
