// Package sorfixture builds SOR files in memory for tests. Every block is
// described by its raw on-disk values, so expectations can be derived from
// the same numbers the decoder sees.
package sorfixture

import (
	"github.com/samber/lo"
	"sor-reader/sor/dmap"
	"sor-reader/sor/lbytes"
)

type (
	Section struct {
		Name string
		Body []byte
	}
	GenParams struct {
		CableID            string
		FiberID            string
		FiberType          uint16
		Wavelength         uint16
		LocationA          string
		LocationB          string
		CableCode          string
		BuildCondition     string
		UserOffset         uint32
		UserOffsetDistance uint32
		Operator           string
		Comments           string
	}
	SupParams struct {
		SupplierName       string
		OTDRName           string
		OTDRSerialNumber   string
		ModuleName         string
		ModuleSerialNumber string
		SoftwareVersion    string
		Other              string
	}
	FxdParams struct {
		DateTime                   uint32
		Units                      string
		Wavelength                 uint16
		AcquisitionOffset          int32
		AcquisitionOffsetDistance  int32
		NumPulseWidthEntries       uint16
		PulseWidth                 uint16
		SampleSpacing              uint32
		NumDataPoints              uint32
		IndexOfRefraction          uint32
		BackscatteringCoefficient  uint16
		NumAverages                uint32
		AveragingTime              uint16
		Range                      uint32
		AcquisitionRangeDistance   int32
		FrontPanelOffset           int32
		NoiseFloorLevel            uint16
		NoiseFloorScalingFactor    int16
		PowerOffsetFirstPoint      uint16
		LossThreshold              uint16
		ReflectionThreshold        uint16
		EndOfTransmissionThreshold uint16
		TraceType                  string
		X1, Y1, X2, Y2             int32
	}
	DataPts struct {
		NumTraces     uint16
		ScalingFactor uint16
		Samples       []uint16
	}
	Event struct {
		Number                  uint16
		TimeOfTravel            uint32
		Slope                   int16
		SpliceLoss              int16
		ReflectionLoss          int32
		Type                    string
		EndOfPreviousEvent      uint32
		BeginningOfCurrentEvent uint32
		EndOfCurrentEvent       uint32
		BeginningOfNextEvent    uint32
		PeakPoint               uint32
		Comment                 string
	}
	KeyEvents struct {
		Events              []Event
		TotalLoss           int32
		FiberStartPosition  int32
		FiberLength         uint32
		OpticalReturnLoss   uint16
		FiberStartPosition2 int32
		FiberLength2        uint32
	}
)

// Values of the default trace. With these the last data point lands at
// (2501.387576623927, -60.749) and the key events trailer at a fiber start
// of -1002.3040072262725 m and a fiber length of 619.8066597773387 m.
const (
	SampleSpacing         = 15625
	IndexOfRefraction     = 146770
	NumDataPoints         = 78376
	ScalingFactor         = 1000
	FirstSample           = 20000
	LastSample            = 60749
	FiberStartPosition    = -49070
	FiberLength           = 30344
	UnknownBlockName      = "WaveMTSParams"
	Checksum              = 0xBEEF
	DefaultSectionVersion = 2.0
)

// UnknownBlockContent is the payload of the vendor block in the default trace.
var UnknownBlockContent = []byte{0x00, 0x01, 0x02, 'J', 'D', 'S', 'U', 0x00, 0xFF, 0x10}

// Build lays out a Map block describing sections followed by the sections themselves.
func Build(sections ...Section) []byte {
	entries := lo.Map(
		sections,
		func(section Section, _ int) dmap.Entry {
			return dmap.Entry{
				Name:     section.Name,
				Version:  DefaultSectionVersion,
				NumBytes: uint32(len(section.Body)),
			}
		},
	)
	w := lbytes.NewWriter().Raw(dmap.Encode(entries))
	for _, section := range sections {
		w.Raw(section.Body)
	}
	return w.Bytes()
}

func DefaultSections() []Section {
	return []Section{
		DefaultGenParams().Section(),
		DefaultSupParams().Section(),
		DefaultFxdParams().Section(),
		DefaultDataPts().Section(),
		DefaultKeyEvents().Section(),
		UnknownSection(UnknownBlockName, UnknownBlockContent),
		ChecksumSection(Checksum),
	}
}

// Default is the complete default trace.
func Default() []byte {
	return Build(DefaultSections()...)
}

func DefaultGenParams() GenParams {
	return GenParams{
		CableID:        "CABLE-0042",
		FiberID:        "F07",
		FiberType:      652,
		Wavelength:     1550,
		LocationA:      "Central Office",
		LocationB:      "Cabinet 12",
		CableCode:      "",
		BuildCondition: "BC",
		Operator:       "field team",
		Comments:       "acceptance test",
	}
}

func DefaultSupParams() SupParams {
	return SupParams{
		SupplierName:       "Acme Optics",
		OTDRName:           "AX-100",
		OTDRSerialNumber:   "SN123456",
		ModuleName:         "SM-1550",
		ModuleSerialNumber: "MOD-77",
		SoftwareVersion:    "4.2.1",
		Other:              "",
	}
}

func DefaultFxdParams() FxdParams {
	return FxdParams{
		DateTime:                   1609459200,
		Units:                      "mt",
		Wavelength:                 15500,
		NumPulseWidthEntries:       1,
		PulseWidth:                 30,
		SampleSpacing:              SampleSpacing,
		NumDataPoints:              NumDataPoints,
		IndexOfRefraction:          IndexOfRefraction,
		BackscatteringCoefficient:  819,
		NumAverages:                6000,
		AveragingTime:              30,
		Range:                      1250,
		NoiseFloorLevel:            40000,
		NoiseFloorScalingFactor:    1000,
		LossThreshold:              20,
		ReflectionThreshold:        40000,
		EndOfTransmissionThreshold: 3000,
		TraceType:                  "ST",
	}
}

// DefaultDataPts ramps linearly from FirstSample to LastSample.
func DefaultDataPts() DataPts {
	return DataPts{
		NumTraces:     1,
		ScalingFactor: ScalingFactor,
		Samples: lo.Times(
			NumDataPoints,
			func(n int) uint16 {
				return uint16(FirstSample + int64(n)*(LastSample-FirstSample)/(NumDataPoints-1))
			},
		),
	}
}

func DefaultKeyEvents() KeyEvents {
	return KeyEvents{
		Events: []Event{
			{
				Number:                  1,
				TimeOfTravel:            0,
				ReflectionLoss:          -45210,
				Type:                    "1F9999LS",
				BeginningOfCurrentEvent: 0,
				EndOfCurrentEvent:       120,
				BeginningOfNextEvent:    160,
				PeakPoint:               12,
				Comment:                 "launch",
			},
			{
				Number:                  2,
				TimeOfTravel:            14535,
				Slope:                   190,
				SpliceLoss:              312,
				Type:                    "0F9999LS",
				EndOfPreviousEvent:      120,
				BeginningOfCurrentEvent: 36000,
				EndOfCurrentEvent:       36100,
				BeginningOfNextEvent:    36300,
				PeakPoint:               36010,
				Comment:                 " splice tray 3 ",
			},
			{
				Number:                  3,
				TimeOfTravel:            FiberLength,
				Slope:                   205,
				SpliceLoss:              -30,
				ReflectionLoss:          -14375,
				Type:                    "2E0012LS",
				EndOfPreviousEvent:      36100,
				BeginningOfCurrentEvent: 75700,
				EndOfCurrentEvent:       75900,
				BeginningOfNextEvent:    76000,
				PeakPoint:               75750,
			},
		},
		TotalLoss:           1275,
		FiberStartPosition:  FiberStartPosition,
		FiberLength:         FiberLength,
		OpticalReturnLoss:   32450,
		FiberStartPosition2: 0,
		FiberLength2:        FiberLength + 12,
	}
}

func UnknownSection(name string, content []byte) Section {
	return Section{
		Name: name,
		Body: lbytes.NewWriter().Str(name).Raw(content).Bytes(),
	}
}

func ChecksumSection(checksum uint16) Section {
	return Section{
		Name: "Cksum",
		Body: lbytes.NewWriter().Str("Cksum").Uint16(checksum).Bytes(),
	}
}

func (p GenParams) Section() Section {
	body := lbytes.NewWriter().
		Str("GenParams").
		Str(p.CableID).
		Str(p.FiberID).
		Uint16(p.FiberType).
		Uint16(p.Wavelength).
		Str(p.LocationA).
		Str(p.LocationB).
		Str(p.CableCode).
		FixedString(p.BuildCondition, 2).
		Uint32(p.UserOffset).
		Uint32(p.UserOffsetDistance).
		Str(p.Operator).
		Str(p.Comments).
		Bytes()
	return Section{Name: "GenParams", Body: body}
}

func (p SupParams) Section() Section {
	body := lbytes.NewWriter().
		Str("SupParams").
		Str(p.SupplierName).
		Str(p.OTDRName).
		Str(p.OTDRSerialNumber).
		Str(p.ModuleName).
		Str(p.ModuleSerialNumber).
		Str(p.SoftwareVersion).
		Str(p.Other).
		Bytes()
	return Section{Name: "SupParams", Body: body}
}

func (p FxdParams) Section() Section {
	body := lbytes.NewWriter().
		Str("FxdParams").
		Uint32(p.DateTime).
		FixedString(p.Units, 2).
		Uint16(p.Wavelength).
		Int32(p.AcquisitionOffset).
		Int32(p.AcquisitionOffsetDistance).
		Uint16(p.NumPulseWidthEntries).
		Uint16(p.PulseWidth).
		Uint32(p.SampleSpacing).
		Uint32(p.NumDataPoints).
		Uint32(p.IndexOfRefraction).
		Uint16(p.BackscatteringCoefficient).
		Uint32(p.NumAverages).
		Uint16(p.AveragingTime).
		Uint32(p.Range).
		Int32(p.AcquisitionRangeDistance).
		Int32(p.FrontPanelOffset).
		Uint16(p.NoiseFloorLevel).
		Int16(p.NoiseFloorScalingFactor).
		Uint16(p.PowerOffsetFirstPoint).
		Uint16(p.LossThreshold).
		Uint16(p.ReflectionThreshold).
		Uint16(p.EndOfTransmissionThreshold).
		FixedString(p.TraceType, 2).
		Int32(p.X1).
		Int32(p.Y1).
		Int32(p.X2).
		Int32(p.Y2).
		Bytes()
	return Section{Name: "FxdParams", Body: body}
}

func (p DataPts) Section() Section {
	w := lbytes.NewWriter().
		Str("DataPts").
		Uint32(uint32(len(p.Samples))).
		Uint16(p.NumTraces).
		Uint32(uint32(len(p.Samples))).
		Uint16(p.ScalingFactor)
	for _, sample := range p.Samples {
		w.Uint16(sample)
	}
	return Section{Name: "DataPts", Body: w.Bytes()}
}

func (p KeyEvents) Section() Section {
	w := lbytes.NewWriter().
		Str("KeyEvents").
		Uint16(uint16(len(p.Events)))
	for _, event := range p.Events {
		w.Uint16(event.Number).
			Uint32(event.TimeOfTravel).
			Int16(event.Slope).
			Int16(event.SpliceLoss).
			Int32(event.ReflectionLoss).
			FixedString(event.Type, 8).
			Uint32(event.EndOfPreviousEvent).
			Uint32(event.BeginningOfCurrentEvent).
			Uint32(event.EndOfCurrentEvent).
			Uint32(event.BeginningOfNextEvent).
			Uint32(event.PeakPoint).
			Str(event.Comment)
	}
	w.Int32(p.TotalLoss).
		Int32(p.FiberStartPosition).
		Uint32(p.FiberLength).
		Uint16(p.OpticalReturnLoss).
		Int32(p.FiberStartPosition2).
		Uint32(p.FiberLength2)
	return Section{Name: "KeyEvents", Body: w.Bytes()}
}
