package dmap

import (
	"log/slog"

	"github.com/pkg/errors"
	"sor-reader/ds"
	"sor-reader/sor/lbytes"
)

func DecodeEntry(reader *lbytes.Reader) (*Entry, error) {
	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: lbytes.CreateStringReadFunction(reader)},
		{Key: "version", ReadFunction: lbytes.CreateDividedReadFunction(reader.ReadUint16, VersionScale)},
		{Key: "numbytes", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
	}
	entry, err := lbytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "dmap.DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

// Decode reads the Map block. The block counts itself in NumBlocks, so
// NumBlocks-1 entries follow the header.
func Decode(reader *lbytes.Reader) (*Block, error) {
	start := reader.Offset()

	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: lbytes.CreateStringReadFunction(reader)},
		{Key: "version", ReadFunction: lbytes.CreateDividedReadFunction(reader.ReadUint16, VersionScale)},
		{Key: "numbytes", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
		{Key: "numblocks", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
	}
	block, err := lbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dmap.Decode error")
		return nil, err
	}
	if block.NumBlocks == 0 {
		return nil, ErrMalformedDirectory{
			Caller: "dmap.Decode",
			Reason: "block count is 0 but the Map block always counts itself",
		}
	}

	block.Maps = make([]Entry, 0, block.NumBlocks-1)
	for i := 1; i < int(block.NumBlocks); i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "dmap.Decode error: entry %d", i)
			return nil, err
		}
		if entry == nil {
			return nil, ds.ErrUnreachableCode{Caller: "dmap.Decode"}
		}
		block.Maps = append(block.Maps, *entry)
	}

	consumed := reader.Offset() - start
	switch {
	case consumed < int(block.NumBytes):
		slog.Debug(
			"map block declares more bytes than its entries use",
			"declared", block.NumBytes,
			"consumed", consumed,
		)
		if err := reader.Skip(int(block.NumBytes) - consumed); err != nil {
			return nil, errors.Wrap(err, "dmap.Decode error: skip map padding")
		}
	case consumed > int(block.NumBytes):
		slog.Warn(
			"map block is longer than declared",
			"declared", block.NumBytes,
			"consumed", consumed,
		)
	}

	return block, nil
}

// IsSupportedVersion reports whether the header bytes of a file look like an
// SR-4731 version 2 Map block.
func IsSupportedVersion(bs []byte) bool {
	reader := lbytes.NewBytesReader(bs)
	name, err := reader.ReadZeroTerminatedString()
	if err != nil || name != BlockName {
		return false
	}
	version, err := reader.ReadUint16()
	if err != nil {
		return false
	}
	return float64(version)/VersionScale == SupportedVersion
}
