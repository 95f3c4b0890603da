// Package registers implements the data model of a hardware module's
// register map: registers, register arrays, bit/bit-vector/integer fields and
// named constants, plus the parser that builds a validated model from a
// register definition document.
package registers

import (
	"errors"
)

// Every validation failure is fatal: the parse aborts at the point of
// detection and no partial model is returned. Errors are classified in four
// categories so that callers can match on them with errors.Is.
var (
	// Unknown key or missing required key in a register definition document
	ErrSchema = errors.New("schema error")
	// Unknown or duplicate name in a namespace
	ErrReference = errors.New("reference error")
	// Value outside of a field's or constant's legal domain
	ErrRange = errors.New("range error")
	// Definition that contradicts a default register or a field type
	ErrConsistency = errors.New("consistency error")
)
