package dgen

import (
	"github.com/pkg/errors"
	"sor-reader/sor/lbytes"
)

func Decode(reader *lbytes.Reader) (*Block, error) {
	readString := lbytes.CreateStringReadFunction(reader)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: readString},
		{Key: "cable_id", ReadFunction: readString},
		{Key: "fiber_id", ReadFunction: readString},
		{Key: "fiber_type", ReadFunction: readUint16},
		{Key: "wavelength", ReadFunction: readUint16},
		{Key: "location_a", ReadFunction: readString},
		{Key: "location_b", ReadFunction: readString},
		{Key: "cable_code", ReadFunction: readString},
		{Key: "build_condition", ReadFunction: lbytes.CreateFixedStringReadFunction(reader, 2)},
		{Key: "user_offset", ReadFunction: readUint32},
		{Key: "user_offset_distance", ReadFunction: readUint32},
		{Key: "operator", ReadFunction: readString},
		{Key: "comments", ReadFunction: readString},
	}
	block, err := lbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dgen.Decode error")
		return nil, err
	}

	block.FiberTypeDescription = lookup(FiberTypes, block.FiberType)
	block.BuildConditionDescription = lookup(BuildConditions, block.BuildCondition)

	return block, nil
}
