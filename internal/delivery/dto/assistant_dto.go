package dto

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"notblank,max=4000"`
	SessionID string `json:"sessionId"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatEntryResponse struct {
	SessionID   string    `json:"sessionId"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"userMessage"`
	AIResponse  string    `json:"aiResponse"`
}

type ChatExport struct {
	SessionID string              `json:"sessionId"`
	Timestamp time.Time           `json:"timestamp"`
	Messages  []ChatEntryResponse `json:"messages"`
}

type ClearSessionResponse struct {
	Removed      int    `json:"removed"`
	NewSessionID string `json:"sessionId"`
}
