package model

import "time"

// ContactRequest is the payload accepted by POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	// Website is a honeypot field rendered invisibly in the form.
	// Humans leave it empty; bots tend to fill it.
	Website string `json:"website,omitempty"`
}

// ContactMessage is the stored form of a submission.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	ReceivedAt time.Time `json:"receivedAt"`
	Forwarded  bool      `json:"forwarded"` // whether the upstream forms endpoint accepted it
}
