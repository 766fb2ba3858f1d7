// Package lbytes reads the little-endian primitives a SOR file is built from.
package lbytes

import (
	"bytes"
	"fmt"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)

	// ErrTruncatedInput is returned whenever a read needs more bytes than the
	// reader (or the block window it represents) still holds.
	ErrTruncatedInput struct {
		Caller    string
		Wanted    int
		Remaining int
	}
)

func (r ErrTruncatedInput) Error() string {
	return fmt.Sprintf(
		"%s: truncated input: wanted %d byte(s), %d remaining",
		r.Caller, r.Wanted, r.Remaining,
	)
}
