package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON is meant for log and error messages: a marshalling failure is
// rendered as text instead of being returned.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Sprintf("<DumpJSON error: %v>", err)
	}

	return string(tBytes)
}
