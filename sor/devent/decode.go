package devent

import (
	"strings"

	"github.com/pkg/errors"
	"sor-reader/ds"
	"sor-reader/sor/dcontext"
	"sor-reader/sor/lbytes"
)

// CalculateDistance converts a time of travel (in units of 100 ps, already
// scaled by TimeOfTravelFactor) into meters of fiber.
func CalculateDistance(timeOfTravel float64, indexOfRefraction float64) float64 {
	return timeOfTravel / 1000 * SpeedOfLight / indexOfRefraction
}

func DecodeEvent(reader *lbytes.Reader, ctx dcontext.Context) (*Event, error) {
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	readLoss16 := lbytes.CreateScaledReadFunction(reader.ReadInt16, LossFactor)

	instructions := []lbytes.Instruction{
		{Key: "event_number", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
		{Key: "time_of_travel", ReadFunction: lbytes.CreateScaledReadFunction(reader.ReadUint32, TimeOfTravelFactor)},
		{Key: "slope", ReadFunction: readLoss16},
		{Key: "splice_loss", ReadFunction: readLoss16},
		{Key: "reflection_loss", ReadFunction: lbytes.CreateScaledReadFunction(reader.ReadInt32, LossFactor)},
		{Key: "event_type", ReadFunction: lbytes.CreateRawStringReadFunction(reader, EventTypeLength)},
		{Key: "end_of_previous_event", ReadFunction: readUint32},
		{Key: "beginning_of_current_event", ReadFunction: readUint32},
		{Key: "end_of_current_event", ReadFunction: readUint32},
		{Key: "beginning_of_next_event", ReadFunction: readUint32},
		{Key: "peak_point", ReadFunction: readUint32},
		{Key: "comment", ReadFunction: lbytes.CreateStringReadFunction(reader)},
	}
	event, err := lbytes.ExecuteInstructions[Event](instructions)
	if err != nil {
		err := errors.Wrap(err, "devent.DecodeEvent error")
		return nil, err
	}

	event.DistanceOfTravel = CalculateDistance(event.TimeOfTravel, ctx.IndexOfRefraction)
	// sub-fields are positional, so the code is interpreted before trimming
	event.EventTypeDetails = InterpretEventType(event.EventType)
	event.EventType = strings.TrimSpace(event.EventType)

	return event, nil
}

func DecodeSummary(reader *lbytes.Reader) (*Summary, error) {
	instructions := []lbytes.Instruction{
		{Key: "total_loss", ReadFunction: lbytes.CreateScaledReadFunction(reader.ReadInt32, LossFactor)},
		{Key: "fiber_start_position_raw", ReadFunction: lbytes.CreateInt32ReadFunction(reader)},
		{Key: "fiber_length_raw", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
		{Key: "optical_return_loss", ReadFunction: lbytes.CreateScaledReadFunction(reader.ReadUint16, LossFactor)},
		{Key: "fiber_start_position2", ReadFunction: lbytes.CreateInt32ReadFunction(reader)},
		{Key: "fiber_length2", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
	}
	summary, err := lbytes.ExecuteInstructions[Summary](instructions)
	if err != nil {
		err := errors.Wrap(err, "devent.DecodeSummary error")
		return nil, err
	}
	return summary, nil
}

func Decode(reader *lbytes.Reader, ctx dcontext.Context) (*Block, error) {
	if err := ctx.Require("devent.Decode"); err != nil {
		return nil, err
	}

	name, err := reader.ReadZeroTerminatedString()
	if err != nil {
		return nil, errors.Wrap(err, "devent.Decode error: read name")
	}
	numEvents, err := reader.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "devent.Decode error: read number_of_events")
	}

	events := make([]Event, 0, numEvents)
	for i := 0; i < int(numEvents); i++ {
		event, err := DecodeEvent(reader, ctx)
		if err != nil {
			err := errors.Wrapf(err, "devent.Decode error: event %d", i)
			return nil, err
		}
		if event == nil {
			return nil, ds.ErrUnreachableCode{Caller: "devent.Decode"}
		}
		events = append(events, *event)
	}

	summary, err := DecodeSummary(reader)
	if err != nil {
		return nil, errors.Wrap(err, "devent.Decode error")
	}

	return &Block{
		Name:      name,
		NumEvents: numEvents,
		Events:    events,
		Summary:   *summary,
		FiberStartPosition: CalculateDistance(
			float64(summary.FiberStartPositionRaw)*TimeOfTravelFactor,
			ctx.IndexOfRefraction,
		),
		FiberLength: CalculateDistance(
			float64(summary.FiberLengthRaw)*TimeOfTravelFactor,
			ctx.IndexOfRefraction,
		),
	}, nil
}
