package lbytes

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// IsTruncatedInput reports whether err, or anything it wraps, is an ErrTruncatedInput.
func IsTruncatedInput(err error) bool {
	var target ErrTruncatedInput
	return errors.As(err, &target)
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.read("ReadUint16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadInt16() (int16, error) {
	bs, err := b.read("ReadInt16", 2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(bs)), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.read("ReadUint32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt32() (int32, error) {
	bs, err := b.read("ReadInt32", 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(bs)), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	return b.read("ReadBytes", n)
}

// ReadFixedString reads exactly n bytes and trims the surrounding white space.
func (b *Reader) ReadFixedString(n int) (string, error) {
	bs, err := b.read("ReadFixedString", n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bs)), nil
}

// ReadZeroTerminatedString reads up to and including the next zero byte.
// The scan never looks past the bytes the reader holds; a missing terminator
// is reported as truncated input.
func (b *Reader) ReadZeroTerminatedString() (string, error) {
	remaining := b.Len()
	bs := make([]byte, 0, 16)
	for i := 0; i < remaining; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return "", errors.Wrap(err, "ReadZeroTerminatedString error")
		}
		if c == 0 {
			return strings.TrimSpace(string(bs)), nil
		}
		bs = append(bs, c)
	}
	return "", ErrTruncatedInput{
		Caller:    "ReadZeroTerminatedString",
		Wanted:    remaining + 1,
		Remaining: remaining,
	}
}

// Window takes the next n bytes off b and returns a reader bounded to exactly
// those bytes. Whatever happens inside the window, b advances by n.
func (b *Reader) Window(n int) (*Reader, error) {
	bs, err := b.read("Window", n)
	if err != nil {
		return nil, err
	}
	return NewBytesReader(bs), nil
}

func (b *Reader) Skip(n int) error {
	_, err := b.read("Skip", n)
	return err
}

// Offset is the number of bytes consumed so far.
func (b *Reader) Offset() int {
	return int(b.Size()) - b.Len()
}

func (b *Reader) read(caller string, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("%s: negative length %d", caller, n)
	}
	bs := make([]byte, n)
	// return early to avoid the EOF error bytes.Reader gives for an empty
	// read at the end of the input
	if n == 0 {
		return bs, nil
	}
	if b.Len() < n {
		return nil, ErrTruncatedInput{
			Caller:    caller,
			Wanted:    n,
			Remaining: b.Len(),
		}
	}
	if _, err := b.Read(bs); err != nil {
		return nil, errors.Wrapf(err, "%s error", caller)
	}
	return bs, nil
}
