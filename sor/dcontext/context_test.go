package dcontext

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestContext_Require(t *testing.T) {
	ctx := Context{}
	err := ctx.Require("ddata.Decode")
	assert.True(t, IsMissingDependency(err))
	assert.True(t, IsMissingDependency(errors.Wrap(err, "wrapped")))

	updated := ctx.WithFxdParams(15625, 1.4677)
	assert.NoError(t, updated.Require("ddata.Decode"))
	assert.Equal(t, uint32(15625), updated.SampleSpacing)
	assert.Equal(t, 1.4677, updated.IndexOfRefraction)

	// the original value is left untouched
	assert.False(t, ctx.HasFxdParams)
}

func TestContext_RequireIndexOfRefraction(t *testing.T) {
	for _, ior := range []float64{0, -1.4677} {
		err := Context{}.WithFxdParams(15625, ior).Require("ddata.Decode")
		assert.Error(t, err)
		assert.True(t, IsInvalidIndexOfRefraction(err), err.Error())
		assert.False(t, IsMissingDependency(err))
	}
}
