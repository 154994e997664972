package production

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/comalice/reducerx/internal/core"
)

// TraceEntry is the exported form of one journaled transition.
type TraceEntry struct {
	Seq    uint64    `json:"seq"`
	Action string    `json:"action"`
	State  any       `json:"state"`
	At     time.Time `json:"at"`
}

// ExportJSON renders a journal as an indented JSON trace for debugging.
// Actions are reduced to their key label; states must be JSON-marshalable.
func ExportJSON[S, A any](j *core.Journal[S, A]) ([]byte, error) {
	if j == nil {
		return nil, fmt.Errorf("nil journal")
	}

	entries := j.Entries()
	out := make([]TraceEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, TraceEntry{
			Seq:    e.Seq,
			Action: core.Describe(e.Action),
			State:  e.Next,
			At:     e.At,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}
