// Package dmap decodes the Map block: the directory every SOR file starts with.
package dmap

import (
	"fmt"
)

type (
	Block struct {
		Name    string  `json:"name"`
		Version float64 `json:"version"`
		// NumBytes is the declared length of the Map block itself.
		NumBytes  uint32  `json:"numbytes"`
		NumBlocks uint16  `json:"numblocks"`
		Maps      []Entry `json:"maps"`
	}
	Entry struct {
		Name     string  `json:"name"`
		Version  float64 `json:"version"`
		NumBytes uint32  `json:"numbytes"`
	}

	ErrMalformedDirectory struct {
		Caller string
		Reason string
	}
)

const (
	BlockName = "Map"
	// SupportedVersion is the only SR-4731 revision this module understands.
	SupportedVersion = 2.0
	// VersionScale is how versions are stored: 2.00 is written as 200.
	VersionScale = 100
)

func (r ErrMalformedDirectory) Error() string {
	return fmt.Sprintf("%s: malformed directory: %s", r.Caller, r.Reason)
}

func (b Block) BlockName() string {
	return b.Name
}
