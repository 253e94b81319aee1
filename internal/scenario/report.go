package scenario

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/alexisbeaulieu97/popper/internal/popper"
	"github.com/alexisbeaulieu97/popper/pkg/diff"
	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// Event is the kind of engine output a record captures.
type Event string

const (
	EventPosition Event = "position"
	EventClose    Event = "close"
)

// Record is one published engine output, stamped with the step that was
// running and the frame count at the time.
type Record struct {
	Step   int                    `json:"step"`
	Action string                 `json:"action"`
	Frame  uint64                 `json:"frame"`
	Event  Event                  `json:"event"`
	Result *popper.PositionResult `json:"result,omitempty"`
}

// Report is the outcome of a replay.
type Report struct {
	Name    string       `json:"name"`
	Records []Record     `json:"records"`
	Open    bool         `json:"open"`
	Active  bool         `json:"active"`
	Stats   popper.Stats `json:"stats"`
	// LeakedListeners counts host listeners still registered after the
	// engine was disposed. Anything but zero is a bug.
	LeakedListeners int `json:"leakedListeners"`
}

func (r *Report) add(rec Record) {
	r.Records = append(r.Records, rec)
}

// Positions returns the published results in order.
func (r *Report) Positions() []popper.PositionResult {
	var out []popper.PositionResult
	for _, rec := range r.Records {
		if rec.Event == EventPosition && rec.Result != nil {
			out = append(out, *rec.Result)
		}
	}
	return out
}

// Closes returns how many times the popper asked to close.
func (r *Report) Closes() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Event == EventClose {
			n++
		}
	}
	return n
}

// WriteJSONLines writes one JSON object per record.
func (r *Report) WriteJSONLines(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, rec := range r.Records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// Expect compares the JSON-lines form of the report with expected and
// returns a MismatchError carrying a line diff when they differ.
func (r *Report) Expect(expected []byte, label string) error {
	var actual bytes.Buffer
	if err := r.WriteJSONLines(&actual); err != nil {
		return err
	}

	if d := diff.Lines(expected, actual.Bytes(), label, "actual"); d != "" {
		return popperrors.NewMismatchError(r.Name, d)
	}
	return nil
}
