// Package dcksum decodes the Cksum block. The checksum is stored as found;
// it is never recomputed or compared against the file.
package dcksum

import (
	"fmt"

	"github.com/pkg/errors"
	"sor-reader/sor/lbytes"
)

type (
	Block struct {
		Name     string `json:"name"`
		Checksum string `json:"checksum"`
	}
)

const (
	BlockName = "Cksum"
)

func (b Block) BlockName() string {
	return b.Name
}

func createChecksumReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		raw, err := reader.ReadUint16()
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%04x", raw), nil
	}
}

func Decode(reader *lbytes.Reader) (*Block, error) {
	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: lbytes.CreateStringReadFunction(reader)},
		{Key: "checksum", ReadFunction: createChecksumReadFunction(reader)},
	}
	block, err := lbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dcksum.Decode error")
		return nil, err
	}

	return block, nil
}
