// Package dsup decodes the SupParams (supplier parameters) block.
package dsup

import (
	"github.com/pkg/errors"
	"sor-reader/sor/lbytes"
)

type (
	Block struct {
		Name               string `json:"name"`
		SupplierName       string `json:"supplier_name"`
		OTDRName           string `json:"otdr_name"`
		OTDRSerialNumber   string `json:"otdr_serial_number"`
		ModuleName         string `json:"module_name"`
		ModuleSerialNumber string `json:"module_serial_number"`
		SoftwareVersion    string `json:"software_version"`
		Other              string `json:"other"`
	}
)

const (
	BlockName = "SupParams"
)

func (b Block) BlockName() string {
	return b.Name
}

func Decode(reader *lbytes.Reader) (*Block, error) {
	readString := lbytes.CreateStringReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: readString},
		{Key: "supplier_name", ReadFunction: readString},
		{Key: "otdr_name", ReadFunction: readString},
		{Key: "otdr_serial_number", ReadFunction: readString},
		{Key: "module_name", ReadFunction: readString},
		{Key: "module_serial_number", ReadFunction: readString},
		{Key: "software_version", ReadFunction: readString},
		{Key: "other", ReadFunction: readString},
	}
	block, err := lbytes.ExecuteInstructions[Block](instructions)
	if err != nil {
		err := errors.Wrap(err, "dsup.Decode error")
		return nil, err
	}

	return block, nil
}
