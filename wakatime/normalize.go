package wakatime

import (
	"encoding/json"
	"math"
	"strings"
)

// Shape identifies which of the three WakaTime response layouts a payload
// uses. Classifying up front keeps the extraction fallback chain exhaustive
// instead of sniffing field presence inline at every step.
type Shape int

const (
	ShapeEmpty     Shape = iota // missing, malformed, or empty data
	ShapeStatusBar              // single object with editors + grand_total
	ShapeSummary                // ordered array of per-day objects
	ShapeStats                  // single object with editors and/or top-level total_seconds
)

func (s Shape) String() string {
	switch s {
	case ShapeStatusBar:
		return "status_bar"
	case ShapeSummary:
		return "summary"
	case ShapeStats:
		return "stats"
	default:
		return "empty"
	}
}

// Payload is a classified period response.
type Payload struct {
	Shape Shape
	Days  []PeriodData // single-object shapes carry exactly one entry
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// ClassifyPayload parses a raw response body into a tagged Payload.
// Malformed or empty input classifies as ShapeEmpty; it is never an error,
// absence of data means values of zero downstream.
func ClassifyPayload(raw []byte) Payload {
	if len(raw) == 0 {
		return Payload{Shape: ShapeEmpty}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
		return Payload{Shape: ShapeEmpty}
	}

	var days []PeriodData
	if err := json.Unmarshal(env.Data, &days); err == nil {
		if len(days) == 0 {
			return Payload{Shape: ShapeEmpty}
		}
		return Payload{Shape: ShapeSummary, Days: days}
	}

	var day PeriodData
	if err := json.Unmarshal(env.Data, &day); err != nil {
		return Payload{Shape: ShapeEmpty}
	}
	if day.GrandTotal != nil {
		return Payload{Shape: ShapeStatusBar, Days: []PeriodData{day}}
	}
	return Payload{Shape: ShapeStats, Days: []PeriodData{day}}
}

// HoursFor extracts the tracked editor's time from a classified payload and
// converts it to hours rounded to one decimal. Rounding happens exactly once,
// after summing across days, so multi-day summaries do not accumulate
// per-day rounding error.
func HoursFor(p Payload, editor string) float64 {
	var seconds float64
	for _, day := range p.Days {
		seconds += day.secondsFor(editor)
	}
	if seconds <= 0 {
		return 0
	}
	return roundHours(seconds)
}

// secondsFor walks the fallback chain for a single period:
//  1. a matching editor entry wins;
//  2. with a breakdown but no match, a positive aggregate is used as a
//     best-effort approximation (assumes a single-editor account);
//  3. with no breakdown at all, the aggregate is used if present;
//  4. otherwise zero.
func (d PeriodData) secondsFor(editor string) float64 {
	if len(d.Editors) > 0 {
		if stat, ok := matchEditor(d.Editors, editor); ok {
			return stat.TotalSeconds
		}
		if total := d.aggregateSeconds(); total > 0 {
			return total
		}
		return 0
	}
	return d.aggregateSeconds()
}

func (d PeriodData) aggregateSeconds() float64 {
	if d.GrandTotal != nil {
		return d.GrandTotal.TotalSeconds
	}
	return d.TotalSeconds
}

// matchEditor finds the tracked editor in a breakdown. Matching is a
// case-insensitive substring test, which subsumes exact matches and vendor
// variants like "Cursor Nightly".
func matchEditor(stats []EditorStat, editor string) (EditorStat, bool) {
	target := strings.ToLower(editor)
	if target == "" {
		return EditorStat{}, false
	}
	for _, stat := range stats {
		if strings.Contains(strings.ToLower(stat.Name), target) {
			return stat, true
		}
	}
	return EditorStat{}, false
}

func roundHours(seconds float64) float64 {
	return math.Round(seconds/3600*10) / 10
}
