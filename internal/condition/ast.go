// Package condition implements the predicate mini-language used by
// :drop, :take, :drop while, and :take while.
package condition

import "regexp"

// NumKind restricts a bare "num" condition to a particular numeric flavor.
type NumKind int

const (
	NumKindAny NumKind = iota
	NumKindInteger
	NumKindFloat
)

// Cond is a predicate over a record. Exactly one field set is meaningful,
// selected by Op.
type Cond struct {
	Op Op

	// LenRange / NumRange
	HasMin bool
	Min    float64
	HasMax bool
	Max    float64

	// LenEq / NumEq
	Eq float64

	// NumKind
	Kind NumKind

	// Regex
	Re *regexp.Regexp

	Negated bool
}

// Op identifies which predicate shape a Cond represents.
type Op int

const (
	OpLenRange Op = iota
	OpLenEq
	OpNumRange
	OpNumEq
	OpNumKind
	OpUpper
	OpLower
	OpEmpty
	OpBlank
	OpRegex
)
