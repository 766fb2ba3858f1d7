package dstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sor-reader/ds"
	"sor-reader/sor/dcontext"
	"sor-reader/sor/dmap"
	"sor-reader/sor/lbytes"
	"sor-reader/sor/sorfixture"
)

func TestDecoders_CoverKnownKinds(t *testing.T) {
	for _, kind := range KnownBlockKinds {
		_, ok := decoders[kind]
		assert.True(t, ok, string(kind))
		assert.Equal(t, kind, InferBlockKind(string(kind)))
	}
	_, ok := decoders[BlockKindUnknown]
	assert.True(t, ok)
}

func TestInferBlockKind(t *testing.T) {
	tests := map[string]BlockKind{
		"GenParams":     BlockKindGenParams,
		"Cksum":         BlockKindCksum,
		"WaveMTSParams": BlockKindUnknown,
		"genparams":     BlockKindUnknown,
		"":              BlockKindUnknown,
	}
	for name, expected := range tests {
		assert.Equal(t, expected, InferBlockKind(name), name)
	}
}

func TestDecodeBlock_NoDecoder(t *testing.T) {
	_, err := DecodeBlock(BlockKind("Map"), lbytes.NewBytesReader(nil), dcontext.Context{})
	require.Error(t, err)
	assert.IsType(t, ds.ErrUnreachableCode{}, err)
}

func TestDecodeBytes_MapOnly(t *testing.T) {
	document, err := DecodeBytes(sorfixture.Build())
	require.NoError(t, err)
	require.Equal(t, 1, document.Len())

	mapBlock, ok := document.Map()
	require.True(t, ok)
	assert.Equal(t, uint16(1), mapBlock.NumBlocks)
	assert.Empty(t, mapBlock.Maps)
}

func TestDecodeBytes_EmptyDirectory(t *testing.T) {
	bs := lbytes.NewWriter().
		Str(dmap.BlockName).
		Uint16(200).
		Uint32(12).
		Uint16(0).
		Bytes()

	_, err := DecodeBytes(bs)
	require.Error(t, err)
	var target dmap.ErrMalformedDirectory
	assert.ErrorAs(t, err, &target)
}

func TestDecodeBytes_TrailingBytes(t *testing.T) {
	bs := append(sorfixture.Default(), 0x01, 0x02, 0x03)

	document, err := DecodeBytes(bs)
	require.NoError(t, err)

	expected, err := DecodeBytes(sorfixture.Default())
	require.NoError(t, err)
	assert.Equal(t, expected, document)
}

func TestDecodeBytes_EmptyInput(t *testing.T) {
	_, err := DecodeBytes(nil)
	require.Error(t, err)
	assert.True(t, lbytes.IsTruncatedInput(err))
}

func FuzzDecodeBytes(f *testing.F) {
	f.Add(sorfixture.Default())
	f.Add(sorfixture.Build(sorfixture.DefaultSupParams().Section()))
	f.Add([]byte{})
	f.Add([]byte("Map\x00"))
	f.Fuzz(func(t *testing.T, bs []byte) {
		document, err := DecodeBytes(bs)
		if err != nil {
			return
		}
		mapBlock, ok := document.Map()
		if !ok {
			t.Fatal("decoded document without a Map block")
		}
		if document.Len() != len(mapBlock.Maps)+1 {
			t.Fatalf("%d blocks for %d directory entries", document.Len(), len(mapBlock.Maps))
		}
	})
}
