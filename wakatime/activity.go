package wakatime

import (
	"strings"
	"time"
)

const (
	// activeWindow is the recency gate for the live indicator.
	activeWindow = 2 * time.Minute

	// sameDayWindow is the looser secondary acceptance paired with the
	// project-name fallback. The 2-minute gate in front of it means the
	// branch can never fire on its own; it is kept to match the upstream
	// behavior this heuristic was calibrated against.
	sameDayWindow = 24 * time.Hour
)

// IsActive reports whether the most recent heartbeat indicates the tracked
// editor is in use right now. This is best-effort liveness detection, not
// authoritative presence: heartbeats can lag, and the project fallback can
// match work done in a different editor.
func IsActive(hb *Heartbeat, editor, project string, now time.Time) bool {
	if hb == nil {
		return false
	}

	ts := time.Unix(0, int64(hb.Time*float64(time.Second)))
	age := now.Sub(ts)
	if age >= activeWindow {
		return false
	}

	if containsFold(hb.editorName(), editor) {
		return true
	}

	projectMatch := containsFold(hb.Project, editor) ||
		(project != "" && containsFold(hb.Project, project))
	return projectMatch && age < sameDayWindow
}

func containsFold(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
