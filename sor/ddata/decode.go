package ddata

import (
	"github.com/pkg/errors"
	"sor-reader/sor/dcontext"
	"sor-reader/sor/lbytes"
)

type header struct {
	Name           string `json:"name"`
	NumDataPoints  uint32 `json:"number_of_data_points"`
	NumTraces      uint16 `json:"number_of_traces"`
	NumDataPoints2 uint32 `json:"number_of_data_points2"`
	ScalingFactor  uint16 `json:"scaling_factor"`
}

// CalculateDistance places sample n on the fiber. The index of refraction
// is part of the formula: leaving it out gives distances that look
// plausible but are wrong by the refraction factor.
func CalculateDistance(n int, sampleSpacing uint32, indexOfRefraction float64) float64 {
	return float64(n) * float64(sampleSpacing) / 100000000 * SpeedOfLight / indexOfRefraction
}

func CalculatePower(raw uint16, scalingFactor uint16) float64 {
	return float64(raw) * -float64(scalingFactor) / 1000000
}

func Decode(reader *lbytes.Reader, ctx dcontext.Context) (*Block, error) {
	if err := ctx.Require("ddata.Decode"); err != nil {
		return nil, err
	}

	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: lbytes.CreateStringReadFunction(reader)},
		{Key: "number_of_data_points", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
		{Key: "number_of_traces", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
		{Key: "number_of_data_points2", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
		{Key: "scaling_factor", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
	}
	h, err := lbytes.ExecuteInstructions[header](instructions)
	if err != nil {
		err := errors.Wrap(err, "ddata.Decode error")
		return nil, err
	}

	// the count comes from the file, so it is checked against what the
	// window holds before anything gets allocated for it
	if needed := int(h.NumDataPoints) * 2; reader.Len() < needed {
		return nil, lbytes.ErrTruncatedInput{
			Caller:    "ddata.Decode",
			Wanted:    needed,
			Remaining: reader.Len(),
		}
	}

	dataPoints := make([]DataPoint, 0, h.NumDataPoints)
	for n := 0; n < int(h.NumDataPoints); n++ {
		raw, err := reader.ReadUint16()
		if err != nil {
			err := errors.Wrapf(err, "ddata.Decode error: data point %d", n)
			return nil, err
		}
		dataPoints = append(
			dataPoints,
			DataPoint{
				Distance: CalculateDistance(n, ctx.SampleSpacing, ctx.IndexOfRefraction),
				Power:    CalculatePower(raw, h.ScalingFactor),
			},
		)
	}

	return &Block{
		Name:           h.Name,
		NumDataPoints:  h.NumDataPoints,
		NumTraces:      h.NumTraces,
		NumDataPoints2: h.NumDataPoints2,
		ScalingFactor:  h.ScalingFactor,
		DataPoints:     dataPoints,
	}, nil
}
