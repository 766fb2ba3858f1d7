package dfxd

import (
	"github.com/pkg/errors"
	"sor-reader/sor/lbytes"
)

func createRangeReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		raw, err := reader.ReadUint32()
		if err != nil {
			return nil, err
		}
		return int64(raw) * RangeFactor, nil
	}
}

func Decode(reader *lbytes.Reader) (*Block, error) {
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readInt16 := lbytes.CreateInt16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	readInt32 := lbytes.CreateInt32ReadFunction(reader)
	readThreshold := lbytes.CreateScaledReadFunction(reader.ReadUint16, ThresholdFactor)

	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: lbytes.CreateStringReadFunction(reader)},
		{Key: "date_time", ReadFunction: readUint32},
		{Key: "units", ReadFunction: lbytes.CreateFixedStringReadFunction(reader, 2)},
		{Key: "wavelength", ReadFunction: lbytes.CreateDividedReadFunction(reader.ReadUint16, WavelengthDivisor)},
		{Key: "acquisition_offset", ReadFunction: readInt32},
		{Key: "acquisition_offset_distance", ReadFunction: readInt32},
		{Key: "number_of_pulse_width_entries", ReadFunction: readUint16},
		{Key: "pulse_width", ReadFunction: readUint16},
		{Key: "sample_spacing", ReadFunction: readUint32},
		{Key: "number_of_data_points", ReadFunction: readUint32},
		{Key: "index_of_refraction", ReadFunction: lbytes.CreateDividedReadFunction(reader.ReadUint32, IndexOfRefractionDivisor)},
		{Key: "backscattering_coefficient", ReadFunction: lbytes.CreateScaledReadFunction(reader.ReadUint16, BackscatteringFactor)},
		{Key: "number_of_averages", ReadFunction: readUint32},
		{Key: "averaging_time", ReadFunction: readUint16},
		{Key: "range", ReadFunction: createRangeReadFunction(reader)},
		{Key: "acquisition_range_distance", ReadFunction: readInt32},
		{Key: "front_panel_offset", ReadFunction: readInt32},
		{Key: "noise_floor_level", ReadFunction: readUint16},
		{Key: "noise_floor_scaling_factor", ReadFunction: readInt16},
		{Key: "power_offset_first_point", ReadFunction: readUint16},
		{Key: "loss_threshold", ReadFunction: readThreshold},
		{Key: "reflection_threshold", ReadFunction: readThreshold},
		{Key: "end_of_transmission_threshold", ReadFunction: lbytes.CreateScaledReadFunction(reader.ReadUint16, EndOfTransmissionFactor)},
		{Key: "trace_type", ReadFunction: lbytes.CreateFixedStringReadFunction(reader, 2)},
		{Key: "x1", ReadFunction: readInt32},
		{Key: "y1", ReadFunction: readInt32},
		{Key: "x2", ReadFunction: readInt32},
		{Key: "y2", ReadFunction: readInt32},
	}
	block, err := lbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dfxd.Decode error")
		return nil, err
	}

	if description, ok := TraceTypes[block.TraceType]; ok {
		block.TraceTypeDescription = &description
	}

	return block, nil
}
