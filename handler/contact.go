package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/email"
	"portfolio-backend/model"
	"portfolio-backend/security"
	"portfolio-backend/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	contactRecentKey = "contact:recent"
	contactKeyPrefix = "contact:"
	contactTTL       = 90 * 24 * time.Hour
	maxStoredContacts = 1000
)

// ContactHandler accepts contact-form submissions, persists them, forwards
// them to the configured forms endpoint, and notifies the owner by email.
type ContactHandler struct {
	redis      *redis.Client
	config     config.Config
	email      *email.Service
	spam       *security.SpamDetector
	httpClient *http.Client
}

// NewContactHandler creates a new contact handler
func NewContactHandler(redisClient *redis.Client, cfg config.Config, emailService *email.Service, spam *security.SpamDetector) *ContactHandler {
	timeout := time.Duration(cfg.Contact.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ContactHandler{
		redis:      redisClient,
		config:     cfg,
		email:      emailService,
		spam:       spam,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Validates and stores a message, forwards it to the forms endpoint, and notifies the owner.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact form fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendJSONError(w, http.StatusBadRequest, errors.New("invalid request body"), "Request body must be valid JSON")
		return
	}

	if err := utils.ValidateContact(req, h.config.Contact.MaxMessageLen); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid contact form submission")
		return
	}

	if isSpam, reason := h.spam.IsSpam(req); isSpam {
		log.Warn().
			Str("reason", reason).
			Str("ip", r.RemoteAddr).
			Msg("Contact submission rejected as spam")
		SendJSONError(w, http.StatusUnprocessableEntity, errors.New("submission rejected"), "Message looks automated")
		return
	}

	msg := model.ContactMessage{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Subject:    req.Subject,
		Message:    req.Message,
		IP:         r.RemoteAddr,
		UserAgent:  r.UserAgent(),
		ReceivedAt: time.Now(),
	}

	forwarded, err := h.forward(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("id", msg.ID).Msg("Failed to forward contact submission")
		// Store anyway so the message is not lost, then report the failure.
		h.store(msg)
		SendJSONError(w, http.StatusBadGateway, errors.New("forwarding failed"), "Message could not be delivered, please try again later")
		return
	}
	msg.Forwarded = forwarded

	h.store(msg)

	// Notification is best-effort and must not delay the response.
	go func(m model.ContactMessage) {
		if err := h.email.NotifyContact(m); err != nil {
			log.Error().Err(err).Str("id", m.ID).Msg("Failed to send contact notification")
		}
	}(msg)

	log.Info().
		Str("id", msg.ID).
		Str("from", msg.Email).
		Bool("forwarded", msg.Forwarded).
		Msg("Contact submission accepted")

	SendJSONSuccess(w, http.StatusOK, map[string]string{
		"id":     msg.ID,
		"status": "received",
	})
}

// forward posts the submission to the configured forms endpoint. Returns
// false with no error when forwarding is not configured.
func (h *ContactHandler) forward(ctx context.Context, req model.ContactRequest) (bool, error) {
	forwardURL := h.config.Contact.ForwardURL
	if forwardURL == "" {
		return false, nil
	}

	payload, err := json.Marshal(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	})
	if err != nil {
		return false, fmt.Errorf("encoding payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, forwardURL, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("forms endpoint returned HTTP %d", resp.StatusCode)
	}
	return true, nil
}

// store persists the submission in Redis. Failures are logged, not fatal:
// the forwarded copy is the primary delivery path.
func (h *ContactHandler) store(msg model.ContactMessage) {
	if h.redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal contact message")
		return
	}

	key := contactKeyPrefix + msg.ID
	if err := h.redis.Set(ctx, key, payload, contactTTL).Err(); err != nil {
		log.Warn().Err(err).Str("id", msg.ID).Msg("Failed to store contact message")
		return
	}

	if err := h.redis.LPush(ctx, contactRecentKey, msg.ID).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to index contact message")
		return
	}
	h.redis.LTrim(ctx, contactRecentKey, 0, maxStoredContacts-1)
	h.redis.Expire(ctx, contactRecentKey, contactTTL)
}
