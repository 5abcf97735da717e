package wakatime

// Wire types for the WakaTime v1 API. Only the fields the normalizer needs
// are declared; everything else in the responses is ignored.

// EditorStat is one entry of an editor breakdown.
type EditorStat struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

// GrandTotal carries the aggregate seconds for a period.
type GrandTotal struct {
	TotalSeconds float64 `json:"total_seconds"`
}

// PeriodData is the common denominator of the three period layouts. The
// status_bar and summaries endpoints put the aggregate under grand_total,
// the stats endpoint puts it at the top level.
type PeriodData struct {
	Editors      []EditorStat `json:"editors"`
	GrandTotal   *GrandTotal  `json:"grand_total"`
	TotalSeconds float64      `json:"total_seconds"`
}

// Heartbeat is a single timestamped activity record. It is consulted only
// for liveness detection, never for duration accounting. The identifying
// field moved between API revisions, hence the four aliases.
type Heartbeat struct {
	Time       float64 `json:"time"` // unix seconds
	Editor     string  `json:"editor"`
	EditorName string  `json:"editor_name"`
	Client     string  `json:"client"`
	ClientName string  `json:"client_name"`
	Project    string  `json:"project"`
}

// editorName returns the first identifying field the heartbeat exposes.
func (h Heartbeat) editorName() string {
	for _, name := range []string{h.Editor, h.EditorName, h.Client, h.ClientName} {
		if name != "" {
			return name
		}
	}
	return ""
}
