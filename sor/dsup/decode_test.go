package dsup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sor-reader/sor/lbytes"
)

func TestDecode(t *testing.T) {
	bs := lbytes.NewWriter().
		Str(BlockName).
		Str("Noyes").
		Str("OFL280").
		Str(" 7C1234 ").
		Str("M-13").
		Str("").
		Str("1.2.3").
		Str("calibrated 2021").
		Bytes()

	block, err := Decode(lbytes.NewBytesReader(bs))
	require.NoError(t, err)

	assert.Equal(
		t,
		Block{
			Name:               BlockName,
			SupplierName:       "Noyes",
			OTDRName:           "OFL280",
			OTDRSerialNumber:   "7C1234",
			ModuleName:         "M-13",
			ModuleSerialNumber: "",
			SoftwareVersion:    "1.2.3",
			Other:              "calibrated 2021",
		},
		*block,
	)
}

func TestDecode_MissingTerminator(t *testing.T) {
	bs := lbytes.NewWriter().
		Str(BlockName).
		Raw([]byte("Noyes")).
		Bytes()

	_, err := Decode(lbytes.NewBytesReader(bs))
	require.Error(t, err)
	assert.True(t, lbytes.IsTruncatedInput(err))
	assert.Contains(t, err.Error(), "supplier_name")
}
