// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce shape rules (lengths, formats)
// defined in struct tags and extracts failures into the typed errors the
// boundary translator understands: a body that cannot be parsed becomes a
// DecodeError, a parsed body that violates its tags becomes a
// ValidationError with field details.
//
// Business invariants (e.g. "name is required") do not live here; the
// service layer owns those.
package validation
