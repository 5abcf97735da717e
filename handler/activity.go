package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/cache"
	"portfolio-backend/config"
	"portfolio-backend/wakatime"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	historyKey = "activity:history"
	historyTTL = 30 * 24 * time.Hour
)

// ActivityHandler exposes the coding-activity snapshot to the frontend.
// The poller writes snapshots through RecordSnapshot; reads are served from
// the cache so a burst of visitors never fans out to the upstream API.
type ActivityHandler struct {
	fetcher *wakatime.Client
	cache   *cache.Cache
	redis   *redis.Client
	config  config.Config
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(fetcher *wakatime.Client, cacheClient *cache.Cache, redisClient *redis.Client, cfg config.Config) *ActivityHandler {
	return &ActivityHandler{
		fetcher: fetcher,
		cache:   cacheClient,
		redis:   redisClient,
		config:  cfg,
	}
}

// RecordSnapshot stores a freshly delivered snapshot in the cache and
// appends it to the Redis history. It is the poller's delivery callback.
func (h *ActivityHandler) RecordSnapshot(snap wakatime.Snapshot) {
	h.cache.SetSnapshot(snap)

	if h.redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	payload, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal activity snapshot")
		return
	}

	// Most recent first, capped, with a rolling expiry.
	if err := h.redis.LPush(ctx, historyKey, payload).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to store activity snapshot history")
		return
	}
	limit := int64(h.config.WakaTime.HistorySize)
	if limit <= 0 {
		limit = 1000
	}
	h.redis.LTrim(ctx, historyKey, 0, limit-1)
	h.redis.Expire(ctx, historyKey, historyTTL)
}

// GetActivity godoc
// @Summary Current coding activity
// @Description Returns the latest coding-activity snapshot (live indicator plus today/week/month hours).
// @Tags Activity
// @Produce json
// @Success 200 {object} wakatime.Snapshot
// @Router /api/activity [get]
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.cache.Snapshot(); ok {
		SendJSONSuccess(w, http.StatusOK, snap)
		return
	}

	// Nothing delivered yet (cold start); fetch inline. FetchSnapshot
	// degrades to zeros on failure, so this always answers.
	snap := h.fetcher.FetchSnapshot(r.Context())
	h.cache.SetSnapshot(snap)
	SendJSONSuccess(w, http.StatusOK, snap)
}

// GetActivityHistory godoc
// @Summary Recent activity snapshots
// @Description Returns recent snapshots, most recent first.
// @Tags Activity
// @Produce json
// @Param limit query int false "Maximum entries to return (default 50, max 500)"
// @Success 200 {array} wakatime.Snapshot
// @Failure 500 {object} ErrorResponse
// @Router /api/activity/history [get]
func (h *ActivityHandler) GetActivityHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 500 {
			SendJSONError(w, http.StatusBadRequest, errors.New("invalid limit parameter"), "Limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	entries, err := h.redis.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read activity history")
		SendJSONError(w, http.StatusInternalServerError, err, "Failed to read activity history")
		return
	}

	snapshots := make([]wakatime.Snapshot, 0, len(entries))
	for _, entry := range entries {
		var snap wakatime.Snapshot
		if err := json.Unmarshal([]byte(entry), &snap); err != nil {
			log.Warn().Err(err).Msg("Skipping malformed history entry")
			continue
		}
		snapshots = append(snapshots, snap)
	}

	SendJSONSuccess(w, http.StatusOK, snapshots)
}

// ForceRefresh godoc
// @Summary Force an activity refresh
// @Description Fetches a fresh snapshot immediately, bypassing the poll interval. Admin only.
// @Tags Activity
// @Produce json
// @Security AdminKey
// @Success 200 {object} wakatime.Snapshot
// @Router /api/activity/refresh [post]
func (h *ActivityHandler) ForceRefresh(w http.ResponseWriter, r *http.Request) {
	snap := h.fetcher.FetchSnapshot(r.Context())
	h.RecordSnapshot(snap)

	log.Info().
		Bool("active", snap.IsActive).
		Float64("today", snap.Hours.Today).
		Msg("Activity snapshot force-refreshed")

	SendJSONSuccess(w, http.StatusOK, snap)
}
