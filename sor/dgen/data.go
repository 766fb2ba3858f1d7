// Package dgen decodes the GenParams (general parameters) block.
package dgen

type (
	Block struct {
		Name                      string  `json:"name"`
		CableID                   string  `json:"cable_id"`
		FiberID                   string  `json:"fiber_id"`
		FiberType                 uint16  `json:"fiber_type"`
		Wavelength                uint16  `json:"wavelength"`
		LocationA                 string  `json:"location_a"`
		LocationB                 string  `json:"location_b"`
		CableCode                 string  `json:"cable_code"`
		BuildCondition            string  `json:"build_condition"`
		UserOffset                uint32  `json:"user_offset"`
		UserOffsetDistance        uint32  `json:"user_offset_distance"`
		Operator                  string  `json:"operator"`
		Comments                  string  `json:"comments"`
		FiberTypeDescription      *string `json:"fiber_type_description"`
		BuildConditionDescription *string `json:"build_condition_description"`
	}
)

const (
	BlockName = "GenParams"
)

var (
	FiberTypes = map[uint16]string{
		651: "ITU-T G.651 (multi-mode fiber)",
		652: "ITU-T G.652 (standard single-mode fiber)",
		653: "ITU-T G.653 (dispersion-shifted fiber)",
		654: "ITU-T G.654 (1550nm loss-minimized fiber)",
		655: "ITU-T G.655 (nonzero dispersion-shifted fiber)",
	}
	BuildConditions = map[string]string{
		"BC": "as-built",
		"CC": "as-current",
		"RC": "as-repaired",
		"OT": "other",
	}
)

func (b Block) BlockName() string {
	return b.Name
}

// lookup turns a table miss into a nil description.
func lookup[K comparable](table map[K]string, key K) *string {
	description, ok := table[key]
	if !ok {
		return nil
	}
	return &description
}
