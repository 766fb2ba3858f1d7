package dmap

import (
	"github.com/samber/lo"
	"sor-reader/sor/lbytes"
)

const (
	// headerFixedSize is version + numbytes + numblocks.
	headerFixedSize = 2 + 4 + 2
	// entryFixedSize is version + numbytes.
	entryFixedSize = 2 + 4
)

func EncodeEntry(entry Entry) []byte {
	return lbytes.NewWriter().
		Str(entry.Name).
		Uint16(encodeVersion(entry.Version)).
		Uint32(entry.NumBytes).
		Bytes()
}

// CalculateBlockLength returns the byte length of a Map block holding entries.
func CalculateBlockLength(entries []Entry) int {
	return lo.Reduce(
		entries,
		func(total int, entry Entry, _ int) int {
			return total + len(entry.Name) + 1 + entryFixedSize
		},
		len(BlockName)+1+headerFixedSize,
	)
}

// Encode writes a version 2 Map block for entries, filling in the
// header fields from them.
func Encode(entries []Entry) []byte {
	w := lbytes.NewWriter().
		Str(BlockName).
		Uint16(encodeVersion(SupportedVersion)).
		Uint32(uint32(CalculateBlockLength(entries))).
		Uint16(uint16(len(entries) + 1))
	for _, entry := range entries {
		w.Raw(EncodeEntry(entry))
	}
	return w.Bytes()
}

func encodeVersion(version float64) uint16 {
	return uint16(version*VersionScale + 0.5)
}
