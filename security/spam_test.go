package security

import (
	"strings"
	"testing"

	"portfolio-backend/model"
)

func TestSpamDetector(t *testing.T) {
	sd := NewSpamDetector(true)

	tests := []struct {
		name   string
		req    model.ContactRequest
		spam   bool
		reason string
	}{
		{
			name: "legitimate message",
			req: model.ContactRequest{
				Subject: "Job opportunity",
				Message: "Hi Bhanu, we liked your FakeBuster project. Here is the role: https://example.com/jobs/123",
			},
			spam: false,
		},
		{
			name:   "honeypot filled",
			req:    model.ContactRequest{Website: "http://bot.example", Subject: "hi", Message: "hi"},
			spam:   true,
			reason: "honeypot_filled",
		},
		{
			name:   "spam phrase in subject",
			req:    model.ContactRequest{Subject: "Cheap SEO Services", Message: "contact us"},
			spam:   true,
			reason: "spam_phrase",
		},
		{
			name: "link flood",
			req: model.ContactRequest{
				Subject: "hello",
				Message: strings.Repeat("see https://spam.example/x ", 5),
			},
			spam:   true,
			reason: "too_many_links",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spam, reason := sd.IsSpam(tt.req)
			if spam != tt.spam {
				t.Errorf("IsSpam() = %v, want %v", spam, tt.spam)
			}
			if reason != tt.reason {
				t.Errorf("reason = %q, want %q", reason, tt.reason)
			}
		})
	}

	stats := sd.GetStats()
	if stats["detected"].(uint64) != 3 {
		t.Errorf("Expected 3 detections, got %v", stats["detected"])
	}
}

func TestSpamDetectorDisabled(t *testing.T) {
	sd := NewSpamDetector(false)
	spam, _ := sd.IsSpam(model.ContactRequest{Website: "filled", Subject: "buy backlinks", Message: "x"})
	if spam {
		t.Error("Disabled detector should pass everything")
	}
}
