package dmap

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sor-reader/sor/lbytes"
)

var entries = []Entry{
	{Name: "GenParams", Version: 2, NumBytes: 92},
	{Name: "SupParams", Version: 2, NumBytes: 56},
	{Name: "FxdParams", Version: 2, NumBytes: 92},
	{Name: "DataPts", Version: 2, NumBytes: 127064},
	{Name: "KeyEvents", Version: 2, NumBytes: 342},
	{Name: "WaveMTSParams", Version: 2, NumBytes: 658},
	{Name: "Cksum", Version: 2, NumBytes: 8},
}

func TestDecode(t *testing.T) {
	bs := Encode(entries)
	reader := lbytes.NewBytesReader(bs)

	block, err := Decode(reader)
	require.NoError(t, err)

	assert.Equal(t, BlockName, block.Name)
	assert.Equal(t, 2.0, block.Version)
	assert.Equal(t, uint32(len(bs)), block.NumBytes)
	assert.Equal(t, len(block.Maps), int(block.NumBlocks)-1)
	assert.Equal(t, entries, block.Maps)
	assert.Equal(t, 0, reader.Len())
}

func TestDecode_NamesInOrder(t *testing.T) {
	block, err := Decode(lbytes.NewBytesReader(Encode(entries)))
	require.NoError(t, err)

	names := lo.Map(
		block.Maps,
		func(entry Entry, _ int) string {
			return entry.Name
		},
	)
	assert.Equal(
		t,
		[]string{"GenParams", "SupParams", "FxdParams", "DataPts", "KeyEvents", "WaveMTSParams", "Cksum"},
		names,
	)
}

func TestDecode_SkipsDeclaredPadding(t *testing.T) {
	bs := lbytes.NewWriter().
		Str(BlockName).
		Uint16(200).
		Uint32(uint32(CalculateBlockLength(nil) + 3)).
		Uint16(1).
		Raw([]byte{0xAA, 0xBB, 0xCC}).
		Uint16(0xBEEF).
		Bytes()
	reader := lbytes.NewBytesReader(bs)

	block, err := Decode(reader)
	require.NoError(t, err)
	assert.Empty(t, block.Maps)

	next, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), next)
}

func TestDecode_ZeroBlocks(t *testing.T) {
	bs := lbytes.NewWriter().
		Str(BlockName).
		Uint16(200).
		Uint32(12).
		Uint16(0).
		Bytes()

	_, err := Decode(lbytes.NewBytesReader(bs))
	var target ErrMalformedDirectory
	assert.ErrorAs(t, err, &target)
}

func TestDecode_Truncated(t *testing.T) {
	bs := Encode(entries)
	for n := 0; n < len(bs); n++ {
		_, err := Decode(lbytes.NewBytesReader(bs[:n]))
		require.Errorf(t, err, "cut at %d", n)
		assert.Truef(t, lbytes.IsTruncatedInput(err), "cut at %d: %v", n, err)
	}
}

func TestIsSupportedVersion(t *testing.T) {
	assert.True(t, IsSupportedVersion(Encode(entries)))

	v1 := lbytes.NewWriter().Str(BlockName).Uint16(100).Bytes()
	assert.False(t, IsSupportedVersion(v1))
	assert.False(t, IsSupportedVersion([]byte("GenParams\x00")))
	assert.False(t, IsSupportedVersion(nil))
}
