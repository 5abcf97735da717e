package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"portfolio-backend/content"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

// ContentHandler serves the portfolio's static sections. Everything here is
// read-only and backed by the content package.
type ContentHandler struct {
	siteURL string
}

// NewContentHandler creates a new content handler
func NewContentHandler() *ContentHandler {
	return &ContentHandler{siteURL: content.GetProfile().SiteURL}
}

// GetProfile godoc
// @Summary Portfolio owner profile
// @Tags Content
// @Produce json
// @Success 200 {object} model.Profile
// @Router /api/profile [get]
func (h *ContentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, content.GetProfile())
}

// GetProjects godoc
// @Summary Portfolio projects
// @Tags Content
// @Produce json
// @Success 200 {array} model.Project
// @Router /api/projects [get]
func (h *ContentHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, content.Projects())
}

// GetSkills godoc
// @Summary Skills list
// @Tags Content
// @Produce json
// @Success 200 {array} model.Skill
// @Router /api/skills [get]
func (h *ContentHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, content.Skills())
}

// GetEducation godoc
// @Summary Education history
// @Tags Content
// @Produce json
// @Success 200 {array} model.Education
// @Router /api/education [get]
func (h *ContentHandler) GetEducation(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, content.EducationEntries())
}

// GetCertifications godoc
// @Summary Certifications
// @Tags Content
// @Produce json
// @Success 200 {array} model.Certification
// @Router /api/certifications [get]
func (h *ContentHandler) GetCertifications(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, content.Certifications())
}

// GenerateQR godoc
// @Summary QR code for the portfolio
// @Description Generates a QR code pointing at the site, or a vCard with the owner's contact details when format=vcard.
// @Tags Content
// @Produce png
// @Param size query int false "Image size in pixels (128-1024, default 256)"
// @Param level query string false "Error correction level: low, medium, high, highest"
// @Param format query string false "Payload format: url (default) or vcard"
// @Success 200 {file} png
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/qr [get]
func (h *ContentHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	size := 256
	if sizeStr := query.Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil {
			SendJSONError(w, http.StatusBadRequest, errors.New("invalid size parameter"), "Size must be a number")
			return
		}
		if parsedSize < 128 || parsedSize > 1024 {
			SendJSONError(w, http.StatusBadRequest, errors.New("size out of range"), "Size must be between 128 and 1024")
			return
		}
		size = parsedSize
	}

	level := qrcode.Medium
	if levelStr := query.Get("level"); levelStr != "" {
		switch levelStr {
		case "low":
			level = qrcode.Low
		case "medium":
			level = qrcode.Medium
		case "high":
			level = qrcode.High
		case "highest":
			level = qrcode.Highest
		default:
			SendJSONError(w, http.StatusBadRequest, errors.New("invalid level parameter"), "Level must be: low, medium, high, or highest")
			return
		}
	}

	var payload string
	format := query.Get("format")
	switch format {
	case "", "url":
		payload = h.siteURL
	case "vcard":
		payload = vCard()
	default:
		SendJSONError(w, http.StatusBadRequest, errors.New("invalid format parameter"), "Format must be: url or vcard")
		return
	}

	qrCode, err := qrcode.Encode(payload, level, size)
	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("Failed to generate QR code")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Length", strconv.Itoa(len(qrCode)))

	if _, err := w.Write(qrCode); err != nil {
		log.Error().Err(err).Msg("Failed to write QR code response")
		return
	}

	log.Info().
		Int("size", size).
		Str("format", format).
		Msg("QR code generated")
}

// vCard renders the owner's contact details as a VCARD 3.0 payload.
func vCard() string {
	p := content.GetProfile()
	var sb strings.Builder
	sb.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	fmt.Fprintf(&sb, "FN:%s\r\n", p.Name)
	fmt.Fprintf(&sb, "TITLE:%s\r\n", p.Headline)
	fmt.Fprintf(&sb, "EMAIL:%s\r\n", p.Email)
	fmt.Fprintf(&sb, "TEL:%s\r\n", p.Phone)
	fmt.Fprintf(&sb, "URL:%s\r\n", p.SiteURL)
	sb.WriteString("END:VCARD\r\n")
	return sb.String()
}
