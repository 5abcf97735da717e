package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/model"
)

func TestGetProjects(t *testing.T) {
	h := NewContentHandler()

	req := httptest.NewRequest("GET", "/api/projects", nil)
	w := httptest.NewRecorder()
	h.GetProjects(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	var projects []model.Project
	if err := json.NewDecoder(w.Body).Decode(&projects); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(projects) == 0 {
		t.Fatal("Expected at least one project")
	}
	for _, p := range projects {
		if p.ID == "" || p.Title == "" {
			t.Errorf("Project missing ID or title: %+v", p)
		}
	}
}

func TestGetProfile(t *testing.T) {
	h := NewContentHandler()

	req := httptest.NewRequest("GET", "/api/profile", nil)
	w := httptest.NewRecorder()
	h.GetProfile(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	var profile model.Profile
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if profile.Name == "" || profile.Email == "" {
		t.Errorf("Profile missing name or email: %+v", profile)
	}
}

func TestGetSkillsAndEducation(t *testing.T) {
	h := NewContentHandler()

	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"Skills", "/api/skills", h.GetSkills},
		{"Education", "/api/education", h.GetEducation},
		{"Certifications", "/api/certifications", h.GetCertifications},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			tt.handler(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status OK, got %v", w.Code)
			}
			var entries []json.RawMessage
			if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if len(entries) == 0 {
				t.Error("Expected a non-empty list")
			}
		})
	}
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateQR(t *testing.T) {
	h := NewContentHandler()

	req := httptest.NewRequest("GET", "/api/qr", nil)
	w := httptest.NewRecorder()
	h.GenerateQR(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
		t.Error("Response body is not a PNG image")
	}
}

func TestGenerateQR_VCard(t *testing.T) {
	h := NewContentHandler()

	req := httptest.NewRequest("GET", "/api/qr?format=vcard&size=512&level=high", nil)
	w := httptest.NewRecorder()
	h.GenerateQR(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
		t.Error("Response body is not a PNG image")
	}
}

func TestGenerateQR_InvalidParams(t *testing.T) {
	h := NewContentHandler()

	tests := []struct {
		name  string
		query string
	}{
		{"Size too small", "?size=64"},
		{"Size too large", "?size=2048"},
		{"Size not a number", "?size=big"},
		{"Bad level", "?level=ultra"},
		{"Bad format", "?format=svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/qr"+tt.query, nil)
			w := httptest.NewRecorder()
			h.GenerateQR(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status BadRequest, got %v", w.Code)
			}
		})
	}
}

func TestVCardPayload(t *testing.T) {
	card := vCard()
	if !bytes.HasPrefix([]byte(card), []byte("BEGIN:VCARD")) {
		t.Error("vCard should start with BEGIN:VCARD")
	}
	for _, field := range []string{"FN:", "EMAIL:", "TEL:", "END:VCARD"} {
		if !bytes.Contains([]byte(card), []byte(field)) {
			t.Errorf("vCard missing %q", field)
		}
	}
}
