// Package devent decodes the KeyEvents block and the packed event type codes inside it.
package devent

type (
	Block struct {
		Name      string  `json:"name"`
		NumEvents uint16  `json:"number_of_events"`
		Events    []Event `json:"events"`
		Summary
		// FiberStartPosition and FiberLength are the raw trailer values
		// converted to meters the same way event times of travel are.
		FiberStartPosition float64 `json:"fiber_start_position"`
		FiberLength        float64 `json:"fiber_length"`
	}
	// Summary is the trailer following the events. The second start
	// position / length pair is kept as found; nothing reconciles it with
	// the first one.
	Summary struct {
		TotalLoss             float64 `json:"total_loss"`
		FiberStartPositionRaw int32   `json:"fiber_start_position_raw"`
		FiberLengthRaw        uint32  `json:"fiber_length_raw"`
		OpticalReturnLoss     float64 `json:"optical_return_loss"`
		FiberStartPosition2   int32   `json:"fiber_start_position2"`
		FiberLength2          uint32  `json:"fiber_length2"`
	}
	Event struct {
		EventNumber             uint16           `json:"event_number"`
		TimeOfTravel            float64          `json:"time_of_travel"`
		Slope                   float64          `json:"slope"`
		SpliceLoss              float64          `json:"splice_loss"`
		ReflectionLoss          float64          `json:"reflection_loss"`
		EventType               string           `json:"event_type"`
		EndOfPreviousEvent      uint32           `json:"end_of_previous_event"`
		BeginningOfCurrentEvent uint32           `json:"beginning_of_current_event"`
		EndOfCurrentEvent       uint32           `json:"end_of_current_event"`
		BeginningOfNextEvent    uint32           `json:"beginning_of_next_event"`
		PeakPoint               uint32           `json:"peak_point"`
		Comment                 string           `json:"comment"`
		DistanceOfTravel        float64          `json:"distance_of_travel"`
		EventTypeDetails        EventTypeDetails `json:"event_type_details"`
	}

	EventTypeDetails struct {
		Event                    EventClass    `json:"event"`
		Note                     Annotation    `json:"note"`
		LandmarkNumber           *int          `json:"landmark_number"`
		LossMeasurementTechnique LossTechnique `json:"loss_measurement_technique"`
	}
	EventClass    string
	Annotation    string
	LossTechnique string
)

const (
	BlockName = "KeyEvents"
	// SpeedOfLight is in meters per microsecond.
	SpeedOfLight = 299.792458

	TimeOfTravelFactor = 0.1
	LossFactor         = 0.001
	EventTypeLength    = 8
	LandmarkNotUsed    = 9999
)

const (
	EventClassNonReflective       = EventClass("non-reflective")
	EventClassReflective          = EventClass("reflective")
	EventClassSaturatedReflective = EventClass("saturated-reflective")
	EventClassUnknown             = EventClass("unknown")

	AnnotationAddedByUser        = Annotation("added-by-user")
	AnnotationMovedByUser        = Annotation("moved-by-user")
	AnnotationEndOfFiber         = Annotation("end-of-fiber")
	AnnotationFoundBySoftware    = Annotation("found-by-software")
	AnnotationOutOfRange         = Annotation("out-of-range")
	AnnotationModifiedEndOfFiber = Annotation("modified-end-of-fiber")
	AnnotationUnknown            = Annotation("unknown")

	LossTechniqueLeastSquare = LossTechnique("least-square")
	LossTechniqueTwoPoint    = LossTechnique("two-point")
	LossTechniqueUnknown     = LossTechnique("unknown")
)

var (
	EventClasses = map[byte]EventClass{
		'0': EventClassNonReflective,
		'1': EventClassReflective,
		'2': EventClassSaturatedReflective,
	}
	Annotations = map[byte]Annotation{
		'A': AnnotationAddedByUser,
		'M': AnnotationMovedByUser,
		'E': AnnotationEndOfFiber,
		'F': AnnotationFoundBySoftware,
		'O': AnnotationOutOfRange,
		'D': AnnotationModifiedEndOfFiber,
	}
	LossTechniques = map[string]LossTechnique{
		"LS": LossTechniqueLeastSquare,
		"2P": LossTechniqueTwoPoint,
	}
)

func (b Block) BlockName() string {
	return b.Name
}

// LandmarkUsed is false when the landmark is missing or set to 9999.
func (d EventTypeDetails) LandmarkUsed() bool {
	return d.LandmarkNumber != nil && *d.LandmarkNumber != LandmarkNotUsed
}
