// Package chat proxies the portfolio's AI assistant to the Gemini
// generateContent API, pinning every question to a static resume context.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 30 * time.Second

	maxResponseBytes = 1 << 20
)

// resumeContext is the assistant's knowledge base. It is deliberately a
// small static blob: the assistant answers about the portfolio owner, not
// about arbitrary topics.
const resumeContext = `
Name: Bhanu Nama
Contact: +91-7993073400, bhanunama08@gmail.com
Objective: Aspiring Software Developer and CSE graduate skilled in MERN stack, Python and Database Systems.
Education:
- B.Tech (CSE) from KMIT (2021-2025), CGPA 8.3
- Intermediate from Sri Gayatri College (2019-2021), 97%
- Schooling from Prerana High School (2019), GPA 10.0
Projects:
1. FakeBuster: AI Deepfake Detection (98.7% accuracy). Tools: React, FastAPI, Python, Deep Learning.
2. Nutri Guide: AI Meal Planner using Gemini API. Tools: MERN, Chart.js.
3. Campus Connect: MERN stack for campus management.
Skills: Java, Python, JS, ReactJS, SQL, MongoDB, AWS, ML, DSA.
`

// EmptyAnswer is returned when the model produces no text.
const EmptyAnswer = "I'm sorry, I couldn't process that. Feel free to contact Bhanu directly!"

// ErrorAnswer is what visitors see when the upstream call fails; the chat
// widget degrades to a pointer at the contact section instead of an error.
const ErrorAnswer = "Error connecting to AI. Please check the contact section to reach Bhanu."

// Options configures a Client.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
	Logger      zerolog.Logger
}

// Client is a minimal Gemini REST client for single request/response chat.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates a Gemini chat client.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:      opts.APIKey,
		baseURL:     baseURL,
		model:       model,
		temperature: opts.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      opts.Logger,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type contentPart struct {
	Text string `json:"text"`
}

type contentBlock struct {
	Parts []contentPart `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction *contentBlock    `json:"system_instruction,omitempty"`
	Contents          []contentBlock   `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content contentBlock `json:"content"`
	} `json:"candidates"`
}

// Ask sends one question and returns the model's answer. The resume context
// rides along as the system instruction on every call; there is no
// conversation state.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("chat: no API key configured")
	}

	payload := generateRequest{
		SystemInstruction: &contentBlock{Parts: []contentPart{{
			Text: fmt.Sprintf("You are an AI assistant for Bhanu Nama's portfolio. Use the following context to answer questions professionally: %s. Keep answers concise and enthusiastic.", resumeContext),
		}}},
		Contents:         []contentBlock{{Parts: []contentPart{{Text: question}}}},
		GenerationConfig: generationConfig{Temperature: c.temperature},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("chat: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chat: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("chat: reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Gemini returned non-success status")
		return "", fmt.Errorf("chat: HTTP %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("chat: decoding response: %w", err)
	}

	answer := extractText(parsed)
	if answer == "" {
		return EmptyAnswer, nil
	}
	return answer, nil
}

func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}
