package ramp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrURIScheme = errors.New("ramp: missing ramp:// scheme")
	ErrBadEscape = errors.New("ramp: invalid percent escape")
)

// Reason enumerates why a raw string failed tokenization.
type Reason string

const (
	ReasonMissingSeparator        Reason = "missing_separator"
	ReasonMultipleMetadataMarkers Reason = "multiple_metadata_markers"
	ReasonTooManyParameters       Reason = "too_many_parameters"
	ReasonEmptyLayer              Reason = "empty_layer"
	ReasonEmptyProtocol           Reason = "empty_protocol"
	ReasonEmptyParameter          Reason = "empty_parameter"
	ReasonEmptyMetadata           Reason = "empty_metadata"
)

// SyntaxError means the input is not well-formed RAMP at all. Pos is the
// byte offset of the offending character.
type SyntaxError struct {
	Pos    int
	Reason Reason
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ramp: syntax error at %d: %s", e.Pos, e.Reason)
}

// ViolationKind enumerates semantic validation failures.
type ViolationKind string

const (
	UnknownLayer            ViolationKind = "unknown_layer"
	UnknownProtocol         ViolationKind = "unknown_protocol"
	ParameterArityMismatch  ViolationKind = "parameter_arity_mismatch"
	ParameterFormatMismatch ViolationKind = "parameter_format_mismatch"
	InvalidMetadata         ViolationKind = "invalid_metadata"
)

// Violation is one semantic rule failure. For parameter format violations,
// Field carries the slot position and Detail the pattern name that rejected
// the value.
type Violation struct {
	Kind   ViolationKind
	Field  string
	Detail string
}

func (v Violation) String() string {
	if v.Detail == "" {
		return fmt.Sprintf("%s (%s)", v.Kind, v.Field)
	}
	return fmt.Sprintf("%s (%s: %s)", v.Kind, v.Field, v.Detail)
}

// ValidationError means the input is well-formed but semantically invalid.
// Violations is never empty and lists every failed rule, not just the first.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "ramp: invalid address: " + strings.Join(parts, "; ")
}
