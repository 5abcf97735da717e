package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-backend/cache"
	"portfolio-backend/chat"
	"portfolio-backend/config"
	"portfolio-backend/wakatime"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// SystemHandler serves health and operational endpoints.
type SystemHandler struct {
	redis   *redis.Client
	cache   *cache.Cache
	fetcher *wakatime.Client
	chat    *chat.Client
	config  config.Config
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(redisClient *redis.Client, cacheClient *cache.Cache, fetcher *wakatime.Client, chatClient *chat.Client, cfg config.Config) *SystemHandler {
	return &SystemHandler{
		redis:   redisClient,
		cache:   cacheClient,
		fetcher: fetcher,
		chat:    chatClient,
		config:  cfg,
	}
}

// HealthCheck godoc
// @Summary Health check
// @Description Returns service health, Redis connectivity, and which upstream integrations are configured.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Service is unhealthy"
// @Router /health [get]
func (h *SystemHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]interface{}{
		"status":   "healthy",
		"redis":    "connected",
		"wakatime": h.fetcher.Configured(),
		"chat":     h.chat.Configured(),
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Redis health check failed")
		status["status"] = "unhealthy"
		status["redis"] = "unavailable"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// CacheMetrics godoc
// @Summary Cache performance metrics
// @Description Returns cache hit rate, misses, and evictions. Admin only.
// @Tags System
// @Produce json
// @Security AdminKey
// @Success 200 {object} cache.MetricsSnapshot
// @Failure 503 {object} ErrorResponse "Cache is disabled"
// @Router /cache/metrics [get]
func (h *SystemHandler) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	if !h.config.Cache.Enabled || h.cache == nil {
		SendJSONError(w, http.StatusServiceUnavailable, errors.New("cache is disabled"), "")
		return
	}

	SendJSONSuccess(w, http.StatusOK, h.cache.GetMetricsSnapshot())
}
