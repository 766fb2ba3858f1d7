// Package dfxd decodes the FxdParams (fixed parameters) block, which holds
// the acquisition settings later blocks need to place samples on the fiber.
package dfxd

import (
	"time"
)

type (
	// Block describes a single trace; files with several pulse width
	// entries only get the first one represented.
	Block struct {
		Name                       string  `json:"name"`
		DateTime                   uint32  `json:"date_time"`
		Units                      string  `json:"units"`
		Wavelength                 float64 `json:"wavelength"`
		AcquisitionOffset          int32   `json:"acquisition_offset"`
		AcquisitionOffsetDistance  int32   `json:"acquisition_offset_distance"`
		NumPulseWidthEntries       uint16  `json:"number_of_pulse_width_entries"`
		PulseWidth                 uint16  `json:"pulse_width"`
		SampleSpacing              uint32  `json:"sample_spacing"`
		NumDataPoints              uint32  `json:"number_of_data_points"`
		IndexOfRefraction          float64 `json:"index_of_refraction"`
		BackscatteringCoefficient  float64 `json:"backscattering_coefficient"`
		NumAverages                uint32  `json:"number_of_averages"`
		AveragingTime              uint16  `json:"averaging_time"`
		Range                      int64   `json:"range"`
		AcquisitionRangeDistance   int32   `json:"acquisition_range_distance"`
		FrontPanelOffset           int32   `json:"front_panel_offset"`
		NoiseFloorLevel            uint16  `json:"noise_floor_level"`
		NoiseFloorScalingFactor    int16   `json:"noise_floor_scaling_factor"`
		PowerOffsetFirstPoint      uint16  `json:"power_offset_first_point"`
		LossThreshold              float64 `json:"loss_threshold"`
		ReflectionThreshold        float64 `json:"reflection_threshold"`
		EndOfTransmissionThreshold float64 `json:"end_of_transmission_threshold"`
		TraceType                  string  `json:"trace_type"`
		X1                         int32   `json:"x1"`
		Y1                         int32   `json:"y1"`
		X2                         int32   `json:"x2"`
		Y2                         int32   `json:"y2"`
		TraceTypeDescription       *string `json:"trace_type_description"`
	}
)

const (
	BlockName = "FxdParams"

	WavelengthDivisor        = 10
	IndexOfRefractionDivisor = 100000
	BackscatteringFactor     = -0.1
	ThresholdFactor          = 0.001
	EndOfTransmissionFactor  = -0.001
	RangeFactor              = 2 * 100000
)

var (
	TraceTypes = map[string]string{
		"ST": "standard trace",
		"RT": "reverse trace",
		"DT": "difference trace",
		"RF": "reference",
	}
)

func (b Block) BlockName() string {
	return b.Name
}

// Time interprets DateTime as seconds since the Unix epoch.
func (b Block) Time() time.Time {
	return time.Unix(int64(b.DateTime), 0).UTC()
}
