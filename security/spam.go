package security

import (
	"regexp"
	"strings"
	"sync"

	"portfolio-backend/model"
)

// SpamDetector scores contact submissions with cheap heuristics. A portfolio
// contact form attracts link-drop bots more than anything sophisticated, so
// a honeypot plus keyword and link checks cover the bulk of it.
type SpamDetector struct {
	mu       sync.RWMutex
	detected uint64
	reasons  map[string]uint64

	enabled bool
}

var (
	urlPattern = regexp.MustCompile(`https?://[^\s]+`)

	// spamPhrases are matched case-insensitively against subject and message.
	spamPhrases = []string{
		"seo services",
		"boost your ranking",
		"buy backlinks",
		"guest post",
		"crypto investment",
		"guaranteed traffic",
		"work from home opportunity",
		"increase your sales",
	}
)

const maxLinks = 3

// NewSpamDetector creates a spam detector.
func NewSpamDetector(enabled bool) *SpamDetector {
	return &SpamDetector{
		reasons: make(map[string]uint64),
		enabled: enabled,
	}
}

// IsSpam checks a submission and returns the rejection reason if it looks
// automated. When detection is disabled everything passes.
func (sd *SpamDetector) IsSpam(req model.ContactRequest) (bool, string) {
	if !sd.enabled {
		return false, ""
	}

	if strings.TrimSpace(req.Website) != "" {
		return sd.flag("honeypot_filled")
	}

	body := strings.ToLower(req.Subject + " " + req.Message)
	for _, phrase := range spamPhrases {
		if strings.Contains(body, phrase) {
			return sd.flag("spam_phrase")
		}
	}

	if len(urlPattern.FindAllStringIndex(req.Message, maxLinks+1)) > maxLinks {
		return sd.flag("too_many_links")
	}

	return false, ""
}

func (sd *SpamDetector) flag(reason string) (bool, string) {
	sd.mu.Lock()
	sd.detected++
	sd.reasons[reason]++
	sd.mu.Unlock()
	return true, reason
}

// GetStats returns detection counters for diagnostics.
func (sd *SpamDetector) GetStats() map[string]interface{} {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	reasons := make(map[string]uint64, len(sd.reasons))
	for k, v := range sd.reasons {
		reasons[k] = v
	}
	return map[string]interface{}{
		"enabled":  sd.enabled,
		"detected": sd.detected,
		"reasons":  reasons,
	}
}
