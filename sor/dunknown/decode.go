// Package dunknown keeps blocks nobody decodes (vendor extensions, newer
// block types) as raw bytes so they survive a decode/encode round trip.
package dunknown

import (
	"github.com/pkg/errors"
	"sor-reader/sor/lbytes"
)

type (
	Block struct {
		Name    string `json:"name"`
		Content []byte `json:"content"`
	}
)

func (b Block) BlockName() string {
	return b.Name
}

// Decode reads the name and keeps every byte left in the reader, which the
// caller has bounded to the declared block length.
func Decode(reader *lbytes.Reader) (*Block, error) {
	name, err := reader.ReadZeroTerminatedString()
	if err != nil {
		return nil, errors.Wrap(err, "dunknown.Decode error: read name")
	}
	content, err := reader.ReadBytes(reader.Len())
	if err != nil {
		return nil, errors.Wrapf(err, "dunknown.Decode error: read content of %q", name)
	}

	return &Block{
		Name:    name,
		Content: content,
	}, nil
}

func Encode(block Block) []byte {
	return lbytes.NewWriter().
		Str(block.Name).
		Raw(block.Content).
		Bytes()
}
