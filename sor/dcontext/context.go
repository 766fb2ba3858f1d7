// Package dcontext carries the values one block produces for the blocks after it.
package dcontext

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	// Context is replaced, never mutated: the assembler swaps in the value
	// returned by WithFxdParams once the FxdParams block is decoded.
	Context struct {
		SampleSpacing     uint32  `json:"sample_spacing"`
		IndexOfRefraction float64 `json:"index_of_refraction"`
		HasFxdParams      bool    `json:"has_fxd_params"`
	}

	// ErrMissingDependency means a block that needs FxdParams values was
	// reached before any FxdParams block.
	ErrMissingDependency struct {
		Caller string
	}

	// ErrInvalidIndexOfRefraction means FxdParams gave an index of
	// refraction no distance can be divided by.
	ErrInvalidIndexOfRefraction struct {
		Caller string
		Value  float64
	}
)

func (r ErrMissingDependency) Error() string {
	return fmt.Sprintf(
		"%s: missing dependency: sample spacing and index of refraction are set by FxdParams, which has not been decoded yet",
		r.Caller,
	)
}

func (r ErrInvalidIndexOfRefraction) Error() string {
	return fmt.Sprintf(
		"%s: invalid index of refraction %v: it must be greater than 0",
		r.Caller, r.Value,
	)
}

func IsInvalidIndexOfRefraction(err error) bool {
	var target ErrInvalidIndexOfRefraction
	return errors.As(err, &target)
}

func IsMissingDependency(err error) bool {
	var target ErrMissingDependency
	return errors.As(err, &target)
}

func (c Context) WithFxdParams(sampleSpacing uint32, indexOfRefraction float64) Context {
	return Context{
		SampleSpacing:     sampleSpacing,
		IndexOfRefraction: indexOfRefraction,
		HasFxdParams:      true,
	}
}

func (c Context) Require(caller string) error {
	if !c.HasFxdParams {
		return ErrMissingDependency{Caller: caller}
	}
	if !(c.IndexOfRefraction > 0) {
		return ErrInvalidIndexOfRefraction{Caller: caller, Value: c.IndexOfRefraction}
	}
	return nil
}
