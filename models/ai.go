package models

// AIRequest is the payload coming from the frontend into /api/ai/chat.
type AIRequest struct {
	UserID string `json:"user_id"` // conversation key, normally the staff ID
	Text   string `json:"text"`    // user's message
}

// AIToolCall records one data-tool invocation made while answering a request.
type AIToolCall struct {
	Name   string         `json:"name"`
	Args   map[string]any `json:"args,omitempty"`
	Result map[string]any `json:"result,omitempty"`
}

// AIResponse is what the chat handler returns to the frontend.
type AIResponse struct {
	ResponseText string       `json:"response"`
	ToolCalls    []AIToolCall `json:"toolCalls,omitempty"`
}

// AIMessage is a single turn stored in the per-user conversation context.
type AIMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// AIContext is the rolling conversation state kept in Redis.
type AIContext struct {
	History []AIMessage `json:"history"`
}
