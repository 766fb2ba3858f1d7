// Package dstruct assembles the decoded blocks of a SOR file into a Document.
package dstruct

import (
	"sor-reader/sor/dcksum"
	"sor-reader/sor/ddata"
	"sor-reader/sor/devent"
	"sor-reader/sor/dfxd"
	"sor-reader/sor/dgen"
	"sor-reader/sor/dsup"
)

type (
	// Block is any decoded block. The concrete types are dmap.Block,
	// dgen.Block, dsup.Block, dfxd.Block, ddata.Block, devent.Block,
	// dcksum.Block and dunknown.Block.
	Block interface {
		BlockName() string
	}
	// Document holds the Map block followed by one block per directory
	// entry, in directory order. Blocks are not modified after decoding.
	Document struct {
		Blocks []Block `json:"blocks"`
	}
	BlockKind string
)

const (
	BlockKindGenParams = BlockKind(dgen.BlockName)
	BlockKindSupParams = BlockKind(dsup.BlockName)
	BlockKindFxdParams = BlockKind(dfxd.BlockName)
	BlockKindDataPts   = BlockKind(ddata.BlockName)
	BlockKindKeyEvents = BlockKind(devent.BlockName)
	BlockKindCksum     = BlockKind(dcksum.BlockName)
	BlockKindUnknown   = BlockKind("")
)

var KnownBlockKinds = []BlockKind{
	BlockKindGenParams,
	BlockKindSupParams,
	BlockKindFxdParams,
	BlockKindDataPts,
	BlockKindKeyEvents,
	BlockKindCksum,
}

// InferBlockKind maps a directory entry name to the decoder kind; any
// name without a decoder is BlockKindUnknown.
func InferBlockKind(name string) BlockKind {
	kind := BlockKind(name)
	if _, ok := decoders[kind]; ok {
		return kind
	}
	return BlockKindUnknown
}
