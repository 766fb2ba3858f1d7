package dstruct

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"sor-reader/ds"
	"sor-reader/sor/dcksum"
	"sor-reader/sor/dcontext"
	"sor-reader/sor/ddata"
	"sor-reader/sor/devent"
	"sor-reader/sor/dfxd"
	"sor-reader/sor/dgen"
	"sor-reader/sor/dmap"
	"sor-reader/sor/dsup"
	"sor-reader/sor/dunknown"
	"sor-reader/sor/lbytes"
)

type decodeFunc func(reader *lbytes.Reader, ctx dcontext.Context) (Block, error)

// decoders is the dispatch table. Every kind in KnownBlockKinds has an
// entry, and BlockKindUnknown is the fallback arm.
var decoders = map[BlockKind]decodeFunc{
	BlockKindGenParams: func(reader *lbytes.Reader, _ dcontext.Context) (Block, error) {
		block, err := dgen.Decode(reader)
		return unwrap(block, err)
	},
	BlockKindSupParams: func(reader *lbytes.Reader, _ dcontext.Context) (Block, error) {
		block, err := dsup.Decode(reader)
		return unwrap(block, err)
	},
	BlockKindFxdParams: func(reader *lbytes.Reader, _ dcontext.Context) (Block, error) {
		block, err := dfxd.Decode(reader)
		return unwrap(block, err)
	},
	BlockKindDataPts: func(reader *lbytes.Reader, ctx dcontext.Context) (Block, error) {
		block, err := ddata.Decode(reader, ctx)
		return unwrap(block, err)
	},
	BlockKindKeyEvents: func(reader *lbytes.Reader, ctx dcontext.Context) (Block, error) {
		block, err := devent.Decode(reader, ctx)
		return unwrap(block, err)
	},
	BlockKindCksum: func(reader *lbytes.Reader, _ dcontext.Context) (Block, error) {
		block, err := dcksum.Decode(reader)
		return unwrap(block, err)
	},
	BlockKindUnknown: func(reader *lbytes.Reader, _ dcontext.Context) (Block, error) {
		block, err := dunknown.Decode(reader)
		return unwrap(block, err)
	},
}

// unwrap turns the pointer every decoder returns into a block value.
func unwrap[T Block](t *T, err error) (Block, error) {
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ds.ErrUnreachableCode{Caller: "dstruct.unwrap"}
	}
	return *t, nil
}

func DecodeBlock(kind BlockKind, reader *lbytes.Reader, ctx dcontext.Context) (Block, error) {
	decode, ok := decoders[kind]
	if !ok {
		return nil, ds.ErrUnreachableCode{
			Caller: "dstruct.DecodeBlock",
			Detail: "no decoder for kind " + ds.DumpJSON(kind),
		}
	}
	return decode(reader, ctx)
}

// Decode reads the whole source once and decodes it.
func Decode(source io.Reader) (*Document, error) {
	bs, err := io.ReadAll(source)
	if err != nil {
		return nil, errors.Wrap(err, "dstruct.Decode error: read source")
	}
	return DecodeBytes(bs)
}

// DecodeBytes decodes the Map block, then each block it lists in order.
// Every block is decoded inside a window of its declared length; the
// declared length, not what the decoder consumed, decides where the next
// block starts. The first error aborts the decode.
func DecodeBytes(bs []byte) (*Document, error) {
	reader := lbytes.NewBytesReader(bs)

	mapBlock, err := dmap.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "dstruct.DecodeBytes error")
	}

	blocks := make([]Block, 0, len(mapBlock.Maps)+1)
	blocks = append(blocks, *mapBlock)
	ctx := dcontext.Context{}
	for i, entry := range mapBlock.Maps {
		window, err := reader.Window(int(entry.NumBytes))
		if err != nil {
			err := errors.Wrapf(err, `dstruct.DecodeBytes error: block %d "%s"`, i, entry.Name)
			return nil, err
		}

		kind := InferBlockKind(entry.Name)
		slog.Debug(
			"decoding block",
			"index", i,
			"name", entry.Name,
			"kind", string(kind),
			"numbytes", entry.NumBytes,
		)
		block, err := DecodeBlock(kind, window, ctx)
		if err != nil {
			err := errors.Wrapf(err, `dstruct.DecodeBytes error: block %d "%s"`, i, entry.Name)
			return nil, err
		}
		if window.Len() > 0 {
			slog.Debug(
				"block shorter than declared, skipping the rest",
				"name", entry.Name,
				"declared", entry.NumBytes,
				"unread", window.Len(),
			)
		}

		if fxdParams, ok := block.(dfxd.Block); ok {
			ctx = ctx.WithFxdParams(fxdParams.SampleSpacing, fxdParams.IndexOfRefraction)
		}
		blocks = append(blocks, block)
	}

	if reader.Len() > 0 {
		slog.Warn("trailing bytes after the last block", "count", reader.Len())
	}

	return &Document{Blocks: blocks}, nil
}
