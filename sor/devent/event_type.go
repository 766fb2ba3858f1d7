package devent

import (
	"strconv"
)

// InterpretEventType splits the event type code laid out as
//
//	n x 0000 yy
//	^ ^  ^    ^
//	| |  |    loss measurement technique: LS (least square) or 2P (two point)
//	| |  landmark number, 9999 when not used
//	| A/M/E/F/O/D: added or moved by user, end of fiber, found by software,
//	|              out of range, modified end of fiber
//	0/1/2: non-reflective, reflective, saturated reflective
//
// Parts that cannot be recognized become the unknown variant (or a nil
// landmark) instead of failing, so one odd code does not cost the whole file.
func InterpretEventType(eventType string) EventTypeDetails {
	details := EventTypeDetails{
		Event:                    EventClassUnknown,
		Note:                     AnnotationUnknown,
		LandmarkNumber:           nil,
		LossMeasurementTechnique: LossTechniqueUnknown,
	}

	if len(eventType) >= 1 {
		if class, ok := EventClasses[eventType[0]]; ok {
			details.Event = class
		}
	}
	if len(eventType) >= 2 {
		if note, ok := Annotations[eventType[1]]; ok {
			details.Note = note
		}
	}
	if len(eventType) >= 6 && isDigits(eventType[2:6]) {
		landmark, err := strconv.Atoi(eventType[2:6])
		if err == nil {
			details.LandmarkNumber = &landmark
		}
	}
	if len(eventType) == EventTypeLength {
		if technique, ok := LossTechniques[eventType[6:8]]; ok {
			details.LossMeasurementTechnique = technique
		}
	}

	return details
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
