package utils

import (
	"strings"
	"testing"

	"portfolio-backend/model"
)

func validRequest() model.ContactRequest {
	return model.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Opportunity",
		Message: "Hi, I saw your portfolio and would like to talk.",
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.ContactRequest)
		wantErr error
	}{
		{"valid", nil, nil},
		{"empty name", func(r *model.ContactRequest) { r.Name = "   " }, ErrEmptyName},
		{"name too long", func(r *model.ContactRequest) { r.Name = strings.Repeat("a", 101) }, ErrNameTooLong},
		{"empty email", func(r *model.ContactRequest) { r.Email = "" }, ErrEmptyEmail},
		{"bad email", func(r *model.ContactRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"email with display name", func(r *model.ContactRequest) { r.Email = "Jane <jane@example.com>" }, ErrInvalidEmail},
		{"empty subject", func(r *model.ContactRequest) { r.Subject = "" }, ErrEmptySubject},
		{"subject too long", func(r *model.ContactRequest) { r.Subject = strings.Repeat("s", 201) }, ErrSubjectTooLong},
		{"empty message", func(r *model.ContactRequest) { r.Message = "\n\t " }, ErrEmptyMessage},
		{"message too long", func(r *model.ContactRequest) { r.Message = strings.Repeat("m", 5001) }, ErrMessageTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			err := ValidateContact(req, 5000)
			if err != tt.wantErr {
				t.Errorf("ValidateContact() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateContactUnlimitedMessageLength(t *testing.T) {
	req := validRequest()
	req.Message = strings.Repeat("m", 100000)
	if err := ValidateContact(req, 0); err != nil {
		t.Errorf("ValidateContact() with no limit should accept long messages, got %v", err)
	}
}

func TestValidateQuestion(t *testing.T) {
	if err := ValidateQuestion("What does Bhanu work on?", 500); err != nil {
		t.Errorf("Expected valid question, got %v", err)
	}
	if err := ValidateQuestion("  ", 500); err != ErrEmptyQuestion {
		t.Errorf("Expected ErrEmptyQuestion, got %v", err)
	}
	if err := ValidateQuestion(strings.Repeat("q", 501), 500); err != ErrQuestionTooLong {
		t.Errorf("Expected ErrQuestionTooLong, got %v", err)
	}
}
