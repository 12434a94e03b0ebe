package wideint

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by DivMod, and is the value Quo, Rem and
	// QuoRem panic with, when the divisor is zero.
	ErrDivisionByZero = errors.New("wideint: division by zero")

	// ErrSyntax indicates that a literal is empty, has no recognisable base or
	// contains a digit that is invalid for its base.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates that a literal does not fit in the target type.
	ErrRange = errors.New("value out of range")
)

// ParseError records a failed literal conversion. Err is ErrSyntax or
// ErrRange.
type ParseError struct {
	Type  string // "u128", "i256", ...
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wideint: parsing %s %q: %v", e.Type, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
