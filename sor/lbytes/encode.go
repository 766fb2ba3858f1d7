package lbytes

import (
	"encoding/binary"
)

func EncodeUint16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeInt16(value int16) []byte {
	return EncodeUint16(uint16(value))
}

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeInt32(value int32) []byte {
	return EncodeUint32(uint32(value))
}

// EncodeString lays a string out the way SOR files do: raw bytes plus a zero byte.
func EncodeString(value string) []byte {
	bs := make([]byte, 0, len(value)+1)
	bs = append(bs, value...)
	bs = append(bs, '\u0000')
	return bs
}

// EncodeFixedString pads (with spaces) or cuts value to exactly n bytes.
func EncodeFixedString(value string, n int) []byte {
	bs := make([]byte, n)
	for i := range bs {
		bs[i] = ' '
	}
	copy(bs, value)
	return bs
}

type Writer struct {
	bs []byte
}

func NewWriter() *Writer {
	return &Writer{bs: make([]byte, 0, 64)}
}

func (w *Writer) Uint16(value uint16) *Writer {
	w.bs = append(w.bs, EncodeUint16(value)...)
	return w
}

func (w *Writer) Int16(value int16) *Writer {
	w.bs = append(w.bs, EncodeInt16(value)...)
	return w
}

func (w *Writer) Uint32(value uint32) *Writer {
	w.bs = append(w.bs, EncodeUint32(value)...)
	return w
}

func (w *Writer) Int32(value int32) *Writer {
	w.bs = append(w.bs, EncodeInt32(value)...)
	return w
}

func (w *Writer) Str(value string) *Writer {
	w.bs = append(w.bs, EncodeString(value)...)
	return w
}

func (w *Writer) FixedString(value string, n int) *Writer {
	w.bs = append(w.bs, EncodeFixedString(value, n)...)
	return w
}

func (w *Writer) Raw(bs []byte) *Writer {
	w.bs = append(w.bs, bs...)
	return w
}

func (w *Writer) Bytes() []byte {
	return w.bs
}
