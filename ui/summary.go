package ui

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"sor-reader/sor/ddata"
	"sor-reader/sor/devent"
	"sor-reader/sor/dfxd"
	"sor-reader/sor/dgen"
	"sor-reader/sor/dstruct"
)

// Summarize renders the handful of fields a technician looks at first.
func Summarize(document dstruct.Document) string {
	lines := []string{}

	if genParams, ok := dstruct.Find[dgen.Block](document); ok {
		lines = append(
			lines,
			fmt.Sprintf("Cable / fiber:  %s / %s", genParams.CableID, genParams.FiberID),
			fmt.Sprintf("Route:          %s -> %s", genParams.LocationA, genParams.LocationB),
		)
	}
	if fxdParams, ok := dstruct.Find[dfxd.Block](document); ok {
		lines = append(
			lines,
			fmt.Sprintf("Acquired:       %s", fxdParams.Time().Format("2006-01-02 15:04:05 MST")),
			fmt.Sprintf("Wavelength:     %g nm", fxdParams.Wavelength),
			fmt.Sprintf("Refraction:     %g", fxdParams.IndexOfRefraction),
		)
	}
	if dataPts, ok := dstruct.Find[ddata.Block](document); ok {
		line := fmt.Sprintf("Data points:    %d", len(dataPts.DataPoints))
		if last, err := lo.Last(dataPts.DataPoints); err == nil {
			line += fmt.Sprintf(" over %.3f m", last.Distance)
		}
		lines = append(lines, line)
	}
	if keyEvents, ok := dstruct.Find[devent.Block](document); ok {
		lines = append(
			lines,
			fmt.Sprintf("Fiber length:   %.3f m", keyEvents.FiberLength),
			fmt.Sprintf("Events:         %d", len(keyEvents.Events)),
		)
		for _, event := range keyEvents.Events {
			lines = append(
				lines,
				fmt.Sprintf(
					"  #%-3d %10.3f m  %-20s %s",
					event.EventNumber,
					event.DistanceOfTravel,
					event.EventTypeDetails.Event,
					event.Comment,
				),
			)
		}
	}

	names := lo.Map(
		document.Blocks,
		func(block dstruct.Block, _ int) string {
			return block.BlockName()
		},
	)
	lines = append(lines, "Blocks:         "+strings.Join(names, ", "))

	return strings.Join(lines, "\n")
}
