package wakatime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL        = "https://wakatime.com/api/v1"
	defaultTimeout        = 10 * time.Second
	defaultHeartbeatLimit = 5

	// maxResponseBytes caps upstream bodies; stats payloads are a few KB.
	maxResponseBytes = 1 << 20
)

// Hours is the tracked editor's coding time per window, in hours rounded to
// one decimal place.
type Hours struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
}

// Snapshot is the normalized activity status handed to the presentation
// layer. Hours fields are always present and numeric; on total upstream
// failure a snapshot carries zero values and IsActive false.
type Snapshot struct {
	IsActive  bool      `json:"isActive"`
	Hours     Hours     `json:"hours"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// ZeroSnapshot is the degraded result used when the upstream is unreachable
// or no API key is configured.
func ZeroSnapshot(now time.Time) Snapshot {
	return Snapshot{FetchedAt: now}
}

// Options configures a Client. Zero values fall back to sane defaults;
// only Editor has no default and must be set.
type Options struct {
	APIKey         string
	BaseURL        string
	Editor         string // tracked editor name, matched case-insensitively
	Project        string // tracked project name for the liveness fallback
	HeartbeatLimit int
	Timeout        time.Duration
	Logger         zerolog.Logger
}

// Client fetches and normalizes WakaTime activity. It never surfaces errors
// to callers: a missing key or any upstream failure degrades to zero values
// so the presentation layer always has a usable snapshot.
type Client struct {
	apiKey         string
	baseURL        string
	editor         string
	project        string
	heartbeatLimit int
	httpClient     *http.Client
	logger         zerolog.Logger

	now func() time.Time
}

// NewClient creates a WakaTime activity client.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	heartbeatLimit := opts.HeartbeatLimit
	if heartbeatLimit <= 0 {
		heartbeatLimit = defaultHeartbeatLimit
	}

	return &Client{
		apiKey:         opts.APIKey,
		baseURL:        baseURL,
		editor:         opts.Editor,
		project:        opts.Project,
		heartbeatLimit: heartbeatLimit,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         opts.Logger,
		now:            time.Now,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// FetchSnapshot assembles one activity snapshot from four upstream windows:
// today's status bar, the last-7-days summaries, the last-30-days stats, and
// the most recent heartbeats. The four requests run concurrently and fail
// independently; a failed request contributes zero values without affecting
// the others.
func (c *Client) FetchSnapshot(ctx context.Context) Snapshot {
	now := c.now()

	if !c.Configured() {
		c.logger.Warn().Msg("WakaTime API key not configured - returning empty activity snapshot")
		return ZeroSnapshot(now)
	}

	today := now.Format("2006-01-02")
	weekStart := now.AddDate(0, 0, -7).Format("2006-01-02")

	paths := [4]string{
		"/users/current/status_bar/today",
		fmt.Sprintf("/users/current/summaries?start=%s&end=%s", weekStart, today),
		"/users/current/stats/last_30_days",
		fmt.Sprintf("/users/current/heartbeats?date=%s&limit=%d", today, c.heartbeatLimit),
	}

	var bodies [4][]byte
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			body, err := c.get(ctx, path)
			if err != nil {
				c.logger.Warn().Err(err).Str("endpoint", path).Msg("WakaTime request failed")
				return
			}
			bodies[i] = body
		}(i, path)
	}
	wg.Wait()

	snap := Snapshot{
		Hours: Hours{
			Today: HoursFor(ClassifyPayload(bodies[0]), c.editor),
			Week:  HoursFor(ClassifyPayload(bodies[1]), c.editor),
			Month: HoursFor(ClassifyPayload(bodies[2]), c.editor),
		},
		FetchedAt: now,
	}
	snap.IsActive = IsActive(latestHeartbeat(bodies[3]), c.editor, c.project, now)

	c.logger.Debug().
		Bool("active", snap.IsActive).
		Float64("today", snap.Hours.Today).
		Float64("week", snap.Hours.Week).
		Float64("month", snap.Hours.Month).
		Msg("Activity snapshot assembled")

	return snap
}

// latestHeartbeat returns the most recent heartbeat of a response, which the
// API orders first. Malformed or empty responses yield nil.
func latestHeartbeat(raw []byte) *Heartbeat {
	if len(raw) == 0 {
		return nil
	}
	var env struct {
		Data []Heartbeat `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
		return nil
	}
	return &env.Data[0]
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// WakaTime uses HTTP Basic auth with the API key as username.
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return body, nil
}
