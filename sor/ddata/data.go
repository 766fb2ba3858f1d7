// Package ddata decodes the DataPts block into (distance, power) pairs.
package ddata

import (
	"encoding/json"
)

type (
	Block struct {
		Name           string      `json:"name"`
		NumDataPoints  uint32      `json:"number_of_data_points"`
		NumTraces      uint16      `json:"number_of_traces"`
		NumDataPoints2 uint32      `json:"number_of_data_points2"`
		ScalingFactor  uint16      `json:"scaling_factor"`
		DataPoints     []DataPoint `json:"data_points"`
	}
	// DataPoint holds the distance in meters and the power in dB of one sample.
	DataPoint struct {
		Distance float64
		Power    float64
	}
)

const (
	BlockName = "DataPts"
	// SpeedOfLight is in meters per microsecond.
	SpeedOfLight = 299.792458
)

func (b Block) BlockName() string {
	return b.Name
}

// MarshalJSON writes the point as a [distance, power] pair.
func (p DataPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Distance, p.Power})
}

func (p *DataPoint) UnmarshalJSON(bs []byte) error {
	pair := [2]float64{}
	if err := json.Unmarshal(bs, &pair); err != nil {
		return err
	}
	p.Distance, p.Power = pair[0], pair[1]
	return nil
}
