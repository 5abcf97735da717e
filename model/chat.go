package model

// ChatRequest is the payload accepted by POST /api/chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
	Cached bool   `json:"cached,omitempty"`
}
