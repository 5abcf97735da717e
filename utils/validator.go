package utils

import (
	"net/mail"
	"strings"

	"portfolio-backend/model"
)

const (
	maxNameLength    = 100
	maxSubjectLength = 200
)

// ValidateContact checks a contact form submission. Field limits are
// generous; the point is rejecting garbage, not policing prose.
func ValidateContact(req model.ContactRequest, maxMessageLen int) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}

	if err := ValidateEmail(req.Email); err != nil {
		return err
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return ErrEmptySubject
	}
	if len(subject) > maxSubjectLength {
		return ErrSubjectTooLong
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return ErrEmptyMessage
	}
	if maxMessageLen > 0 && len(message) > maxMessageLen {
		return ErrMessageTooLong
	}

	return nil
}

// ValidateEmail checks that an address parses per RFC 5322.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateQuestion checks a chat question.
func ValidateQuestion(question string, maxLen int) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return ErrEmptyQuestion
	}
	if maxLen > 0 && len(question) > maxLen {
		return ErrQuestionTooLong
	}
	return nil
}
