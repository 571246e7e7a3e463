// Package catalog loads the code family catalog: the YAML file that declares,
// for every coded field family, its vocabulary and normalization rule.
//
// # Overview
//
// Each family names the protocol buffer enum it maps to and how codes are
// spelled on both sides:
//
//	version: "1"
//	families:
//	  - name: TaskStatus
//	    enum: google.fhir.r4.core.TaskStatusCode.Value
//	    codes: [draft, requested, in-progress]
//	  - name: QuantityComparator
//	    enum: google.fhir.r4.core.QuantityComparatorCode.Value
//	    overrides:
//	      "<": LESS_THAN
//	    codes: ["<"]
//
// # Rules
//
// A family's rule fields mirror code.Rule:
//
//   - prefix: prepended to every constant name ("V_" for version codes)
//   - separators: code runes turned into "_" (default "-")
//   - split_camel: split camelCase codes into words first
//   - inverse: join (default), camel or strip; how a constant name becomes a code
//   - overrides: verbatim code to constant name pairs
//
// codes accepts a single string or a list.
//
// # Checking
//
// Validate reports structural problems. Build resolves enums through a
// protoregistry and returns the family set; an enum that cannot be resolved
// leaves its family unbound with a warning, since record schemas bind families
// to the enums of the fields they are used on. Check round-trips every family
// and reports lossy rules as warnings.
package catalog
