package lbytes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadIntegers(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			0x34, 0x12,
			0xFE, 0xFF,
			3, 1, 4, 3,
			0xFF, 0xFF, 0xFF, 0xFF,
		},
	)

	u16, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	i16, err := reader.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	u32, err := reader.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(50594051), u32)

	i32, err := reader.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)

	assert.Equal(t, 12, reader.Offset())
	assert.Equal(t, 0, reader.Len())
}

func TestReader_ReadStrings(t *testing.T) {
	bs := NewWriter().
		Str("  GenParams ").
		FixedString("BC", 2).
		FixedString("ST", 4).
		Str("").
		Bytes()
	reader := NewBytesReader(bs)

	name, err := reader.ReadZeroTerminatedString()
	require.NoError(t, err)
	assert.Equal(t, "GenParams", name)

	code, err := reader.ReadFixedString(2)
	require.NoError(t, err)
	assert.Equal(t, "BC", code)

	padded, err := reader.ReadFixedString(4)
	require.NoError(t, err)
	assert.Equal(t, "ST", padded)

	empty, err := reader.ReadZeroTerminatedString()
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestReader_Truncated(t *testing.T) {
	tests := map[string]func(reader *Reader) error{
		"uint16": func(reader *Reader) error {
			_, err := reader.ReadUint16()
			return err
		},
		"int32": func(reader *Reader) error {
			_, err := reader.ReadInt32()
			return err
		},
		"fixed string": func(reader *Reader) error {
			_, err := reader.ReadFixedString(8)
			return err
		},
		"zero terminated string without terminator": func(reader *Reader) error {
			_, err := reader.ReadZeroTerminatedString()
			return err
		},
		"window": func(reader *Reader) error {
			_, err := reader.Window(2)
			return err
		},
		"skip": func(reader *Reader) error {
			return reader.Skip(5)
		},
	}

	for name, read := range tests {
		t.Run(name, func(t *testing.T) {
			reader := NewBytesReader([]byte{'a'})
			err := read(reader)
			require.Error(t, err)
			assert.True(t, IsTruncatedInput(err), err.Error())
		})
	}
}

func TestReader_Window(t *testing.T) {
	reader := NewBytesReader([]byte{1, 0, 2, 0, 3, 0})

	window, err := reader.Window(4)
	require.NoError(t, err)
	assert.Equal(t, 4, reader.Offset())

	first, err := window.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), first)

	// over-reading the window fails even though the parent still has bytes
	_, err = window.ReadUint32()
	assert.True(t, IsTruncatedInput(err))

	// the parent is not affected by what happens inside the window
	last, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(3), last)
}

func TestExecuteInstructions(t *testing.T) {
	type Record struct {
		Name       string  `json:"name"`
		Wavelength float64 `json:"wavelength"`
		Threshold  float64 `json:"threshold"`
		Offset     int32   `json:"offset"`
	}
	bs := NewWriter().
		Str("FxdParams").
		Uint16(13100).
		Uint16(3000).
		Int32(-42).
		Bytes()
	reader := NewBytesReader(bs)

	record, err := ExecuteInstructions[Record](
		[]Instruction{
			{"name", CreateStringReadFunction(reader)},
			{"wavelength", CreateDividedReadFunction(reader.ReadUint16, 10)},
			{"threshold", CreateScaledReadFunction(reader.ReadUint16, 0.001)},
			{"offset", CreateInt32ReadFunction(reader)},
		},
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		Record{
			Name:       "FxdParams",
			Wavelength: 1310,
			Threshold:  3000 * 0.001,
			Offset:     -42,
		},
		*record,
	)
}

func TestExecuteInstructions_Error(t *testing.T) {
	type Record struct {
		Value uint32 `json:"value"`
	}
	reader := NewBytesReader([]byte{1, 2})

	_, err := ExecuteInstructions[Record](
		[]Instruction{
			{"value", CreateUint32ReadFunction(reader)},
		},
	)
	require.Error(t, err)
	assert.True(t, IsTruncatedInput(err))
	assert.Contains(t, err.Error(), `reading key "value"`)
}

func TestExecuteInstructions_KeepsBytes(t *testing.T) {
	type Record struct {
		Comment string `json:"comment"`
		Code    string `json:"code"`
	}
	bs := NewWriter().
		Str("\xe9pissure  C\xe2ble").
		Raw([]byte(" F9999LS")).
		Bytes()
	reader := NewBytesReader(bs)

	record, err := ExecuteInstructions[Record](
		[]Instruction{
			{"comment", CreateStringReadFunction(reader)},
			{"code", CreateRawStringReadFunction(reader, 8)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "\xe9pissure  C\xe2ble", record.Comment)
	assert.Equal(t, " F9999LS", record.Code)
}

func TestExecuteInstructions_PromotedFields(t *testing.T) {
	type Inner struct {
		Loss float64 `json:"loss"`
	}
	type Record struct {
		Inner
		Count uint16 `json:"count"`
	}
	reader := NewBytesReader(NewWriter().Uint16(7).Uint16(1275).Bytes())

	record, err := ExecuteInstructions[Record](
		[]Instruction{
			{"count", CreateUint16ReadFunction(reader)},
			{"loss", CreateScaledReadFunction(reader.ReadUint16, 0.001)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), record.Count)
	assert.Equal(t, 1275*0.001, record.Loss)
}

func TestExecuteInstructions_Assignment(t *testing.T) {
	type Record struct {
		Small  uint8   `json:"small"`
		Wide   int64   `json:"wide"`
		Amount float64 `json:"amount"`
	}
	reader := NewBytesReader(NewWriter().Uint16(300).Uint32(70000).Uint16(5).Bytes())

	_, err := ExecuteInstructions[Record](
		[]Instruction{{"small", CreateUint16ReadFunction(reader)}},
	)
	assert.ErrorContains(t, err, "overflows")

	record, err := ExecuteInstructions[Record](
		[]Instruction{{"wide", CreateUint32ReadFunction(reader)}},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(70000), record.Wide)

	_, err = ExecuteInstructions[Record](
		[]Instruction{{"amount", CreateUint16ReadFunction(reader)}},
	)
	assert.ErrorContains(t, err, `assigning key "amount"`)

	_, err = ExecuteInstructions[Record](
		[]Instruction{{"missing", CreateUint16ReadFunction(NewBytesReader([]byte{1, 0}))}},
	)
	assert.ErrorContains(t, err, `no field for key "missing"`)
}
