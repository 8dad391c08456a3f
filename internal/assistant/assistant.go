package assistant

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Roles used in Message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ErrorResponse is shown when neither responder produced an answer.
const ErrorResponse = "I apologize, but I encountered an error. Please try again or check your internet connection."

type Message struct {
	Role    string
	Content string
}

// Responder answers the latest user message given the prior conversation.
type Responder interface {
	Respond(ctx context.Context, history []Message, message string) (string, error)
}

// Assistant asks the primary responder and falls back to the offline rules
// when it fails or returns nothing.
type Assistant struct {
	primary  Responder
	fallback Responder
	log      *logrus.Logger
}

func New(primary, fallback Responder, log *logrus.Logger) *Assistant {
	return &Assistant{primary: primary, fallback: fallback, log: log}
}

func (a *Assistant) Reply(ctx context.Context, history []Message, message string) string {
	answer, err := a.primary.Respond(ctx, history, message)
	if err == nil && answer != "" {
		return answer
	}
	if err != nil {
		a.log.Warnf("Failed to get assistant response: %+v", err)
	}

	answer, err = a.fallback.Respond(ctx, history, message)
	if err != nil || answer == "" {
		a.log.Warnf("Failed to get fallback response: %+v", err)
		return ErrorResponse
	}
	return answer
}
