package entity

import "time"

// ChatEntry is one question/answer exchange with the assistant.
type ChatEntry struct {
	SessionID   string    `json:"sessionId"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"userMessage"`
	AIResponse  string    `json:"aiResponse"`
}
