package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/chat"
	"portfolio-backend/config"
	"portfolio-backend/model"

	"github.com/rs/zerolog"
)

func chatConfig() config.Config {
	cfg := testConfig()
	cfg.Chat = config.ChatConfig{
		Enabled:        true,
		MaxQuestionLen: 500,
	}
	return cfg
}

func newChatHandler(t *testing.T, baseURL string, cfg config.Config) *ChatHandler {
	t.Helper()
	client := chat.NewClient(chat.Options{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Logger:  zerolog.Nop(),
	})
	return NewChatHandler(client, testCache(t), testRedis(t), cfg)
}

func postChat(t *testing.T, h *ChatHandler, question string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(model.ChatRequest{Question: question})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Ask(w, req)
	return w
}

func decodeChat(t *testing.T, w *httptest.ResponseRecorder) model.ChatResponse {
	t.Helper()
	var resp model.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func geminiStub(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": answer}},
				}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAsk_EmptyQuestion(t *testing.T) {
	h := newChatHandler(t, "http://127.0.0.1:0", chatConfig())

	for _, question := range []string{"", "   "} {
		w := postChat(t, h, question)
		if w.Code != http.StatusBadRequest {
			t.Errorf("question=%q: expected status BadRequest, got %v", question, w.Code)
		}
	}
}

func TestAsk_QuestionTooLong(t *testing.T) {
	h := newChatHandler(t, "http://127.0.0.1:0", chatConfig())

	w := postChat(t, h, strings.Repeat("a", 501))
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status BadRequest, got %v", w.Code)
	}
}

func TestAsk_Disabled(t *testing.T) {
	cfg := chatConfig()
	cfg.Chat.Enabled = false
	h := newChatHandler(t, "http://127.0.0.1:0", cfg)

	w := postChat(t, h, "What projects has Bhanu built?")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status ServiceUnavailable, got %v", w.Code)
	}
}

func TestAsk_Success(t *testing.T) {
	upstream := geminiStub(t, "Bhanu built FreelaDesk, Nutri Guide, and Campus Connect.")
	h := newChatHandler(t, upstream.URL, chatConfig())

	w := postChat(t, h, "What projects has Bhanu built?")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	resp := decodeChat(t, w)
	if !strings.Contains(resp.Answer, "FreelaDesk") {
		t.Errorf("Answer = %q, want the upstream text", resp.Answer)
	}
	if resp.Cached {
		t.Error("First answer should not be marked cached")
	}
}

func TestAsk_SecondCallServedFromCache(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "cached answer"}},
				}},
			},
		})
	}))
	defer upstream.Close()

	h := newChatHandler(t, upstream.URL, chatConfig())

	first := postChat(t, h, "Tell me about Bhanu")
	if first.Code != http.StatusOK {
		t.Fatalf("First call: expected status OK, got %v", first.Code)
	}
	time.Sleep(50 * time.Millisecond) // ristretto sets are async

	second := postChat(t, h, "Tell me about Bhanu")
	resp := decodeChat(t, second)
	if !resp.Cached {
		t.Error("Second identical question should be served from cache")
	}
	if calls != 1 {
		t.Errorf("Upstream called %d times, want 1", calls)
	}
}

func TestAsk_UpstreamFailureDegrades(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	h := newChatHandler(t, upstream.URL, chatConfig())

	w := postChat(t, h, "What projects has Bhanu built?")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK on upstream failure, got %v", w.Code)
	}
	resp := decodeChat(t, w)
	if resp.Answer != chat.ErrorAnswer {
		t.Errorf("Answer = %q, want fallback %q", resp.Answer, chat.ErrorAnswer)
	}
}
