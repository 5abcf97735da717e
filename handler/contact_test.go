package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/email"
	"portfolio-backend/model"
	"portfolio-backend/security"
)

func newContactHandler(t *testing.T, cfg config.Config) *ContactHandler {
	t.Helper()
	return NewContactHandler(
		testRedis(t),
		cfg,
		email.NewService(cfg.Email),
		security.NewSpamDetector(cfg.Contact.SpamEnabled),
	)
}

func contactConfig(forwardURL string) config.Config {
	cfg := testConfig()
	cfg.Contact = config.ContactConfig{
		ForwardURL:     forwardURL,
		RequestTimeout: 5,
		SpamEnabled:    true,
		MaxMessageLen:  5000,
	}
	return cfg
}

func validSubmission() map[string]string {
	return map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Hello",
		"message": "I enjoyed your portfolio.",
	}
}

func postContact(t *testing.T, h *ContactHandler, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SubmitContact(w, req)
	return w
}

func TestSubmitContact_InvalidJSON(t *testing.T) {
	h := newContactHandler(t, contactConfig(""))

	req := httptest.NewRequest("POST", "/api/contact", bytes.NewBufferString(`{"name": invalid}`))
	w := httptest.NewRecorder()
	h.SubmitContact(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status BadRequest, got %v", w.Code)
	}
}

func TestSubmitContact_ValidationFailures(t *testing.T) {
	h := newContactHandler(t, contactConfig(""))

	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"Empty name", func(m map[string]string) { m["name"] = "" }},
		{"Bad email", func(m map[string]string) { m["email"] = "not-an-email" }},
		{"Empty subject", func(m map[string]string) { m["subject"] = "  " }},
		{"Empty message", func(m map[string]string) { m["message"] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validSubmission()
			tt.mutate(payload)
			w := postContact(t, h, payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status BadRequest, got %v", w.Code)
			}
		})
	}
}

func TestSubmitContact_SpamRejected(t *testing.T) {
	h := newContactHandler(t, contactConfig(""))

	payload := validSubmission()
	payload["website"] = "http://spam.example.com" // honeypot
	w := postContact(t, h, payload)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status UnprocessableEntity, got %v", w.Code)
	}
}

func TestSubmitContact_Success(t *testing.T) {
	var forwarded bool
	forms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = true
		w.WriteHeader(http.StatusOK)
	}))
	defer forms.Close()

	h := newContactHandler(t, contactConfig(forms.URL))
	w := postContact(t, h, validSubmission())

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v: %s", w.Code, w.Body.String())
	}
	if !forwarded {
		t.Error("Expected submission to be forwarded to the forms endpoint")
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["status"] != "received" {
		t.Errorf("status = %q, want %q", resp["status"], "received")
	}
	if resp["id"] == "" {
		t.Error("Expected a message ID in the response")
	}

	// The message is persisted under its ID.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	stored, err := h.redis.Get(ctx, contactKeyPrefix+resp["id"]).Bytes()
	if err != nil {
		t.Fatalf("Stored message not found: %v", err)
	}
	var msg model.ContactMessage
	if err := json.Unmarshal(stored, &msg); err != nil {
		t.Fatalf("Failed to unmarshal stored message: %v", err)
	}
	if msg.Email != "jane@example.com" {
		t.Errorf("Stored email = %q, want %q", msg.Email, "jane@example.com")
	}
	if !msg.Forwarded {
		t.Error("Stored message should be marked forwarded")
	}
}

func TestSubmitContact_ForwardFailureStillStores(t *testing.T) {
	forms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer forms.Close()

	h := newContactHandler(t, contactConfig(forms.URL))
	w := postContact(t, h, validSubmission())

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status BadGateway, got %v", w.Code)
	}

	// The message survived the failed forward.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ids, err := h.redis.LRange(ctx, contactRecentKey, 0, -1).Result()
	if err != nil {
		t.Fatalf("Failed to read recent index: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("Expected 1 stored message, got %d", len(ids))
	}
}

func TestSubmitContact_NoForwardConfigured(t *testing.T) {
	h := newContactHandler(t, contactConfig(""))
	w := postContact(t, h, validSubmission())

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	stored, err := h.redis.Get(ctx, contactKeyPrefix+resp["id"]).Bytes()
	if err != nil {
		t.Fatalf("Stored message not found: %v", err)
	}
	var msg model.ContactMessage
	if err := json.Unmarshal(stored, &msg); err != nil {
		t.Fatalf("Failed to unmarshal stored message: %v", err)
	}
	if msg.Forwarded {
		t.Error("Message should not be marked forwarded without a forms endpoint")
	}
}
