package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/cache"
	"portfolio-backend/chat"
	"portfolio-backend/config"
	"portfolio-backend/model"
	"portfolio-backend/utils"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const chatCounterKey = "chat:requests"

// ChatHandler proxies visitor questions to the AI assistant. Answers are
// memoized in the cache: visitors tend to ask the suggested questions, and
// every saved upstream call is saved quota.
type ChatHandler struct {
	client *chat.Client
	cache  *cache.Cache
	redis  *redis.Client
	config config.Config
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatClient *chat.Client, cacheClient *cache.Cache, redisClient *redis.Client, cfg config.Config) *ChatHandler {
	return &ChatHandler{
		client: chatClient,
		cache:  cacheClient,
		redis:  redisClient,
		config: cfg,
	}
}

// Ask godoc
// @Summary Ask the portfolio assistant
// @Description Sends one question to the AI assistant. Stateless: no conversation history is kept.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "The question"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if !h.config.Chat.Enabled {
		SendJSONError(w, http.StatusServiceUnavailable, errors.New("chat disabled"), "The assistant is not available")
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendJSONError(w, http.StatusBadRequest, errors.New("invalid request body"), "Request body must be valid JSON")
		return
	}

	if err := utils.ValidateQuestion(req.Question, h.config.Chat.MaxQuestionLen); err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid question")
		return
	}

	question := strings.TrimSpace(req.Question)
	cacheKey := "chat:" + strings.ToLower(question)

	if cached, found := h.cache.Get(cacheKey); found {
		if answer, ok := cached.(string); ok {
			SendJSONSuccess(w, http.StatusOK, model.ChatResponse{Answer: answer, Cached: true})
			return
		}
	}

	h.countRequest()

	answer, err := h.client.Ask(r.Context(), question)
	if err != nil {
		log.Warn().Err(err).Msg("Chat upstream failed")
		// Same contract as the activity core: degrade, do not error out.
		SendJSONSuccess(w, http.StatusOK, model.ChatResponse{Answer: chat.ErrorAnswer})
		return
	}

	h.cache.Set(cacheKey, answer, 1)
	SendJSONSuccess(w, http.StatusOK, model.ChatResponse{Answer: answer})
}

// countRequest tracks upstream usage for the health/stats endpoints.
func (h *ChatHandler) countRequest() {
	if h.redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()
	if err := h.redis.Incr(ctx, chatCounterKey).Err(); err != nil {
		log.Debug().Err(err).Msg("Failed to increment chat counter")
	}
}
