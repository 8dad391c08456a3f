package assistant

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are the E-Doc medical assistant. Give short, general health guidance, suggest seeing a healthcare provider when symptoms are serious, and never give a diagnosis."

var ErrEmptyCompletion = errors.New("openai returned no choices")

// ChatCompleter is the part of the OpenAI client the responder needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIResponder sends the recent conversation to the chat completion API.
type OpenAIResponder struct {
	client       ChatCompleter
	model        string
	timeout      time.Duration
	contextTurns int
}

func NewOpenAIResponder(apiKey, model string, timeout time.Duration, contextTurns int) *OpenAIResponder {
	return NewOpenAIResponderWithClient(openai.NewClient(apiKey), model, timeout, contextTurns)
}

func NewOpenAIResponderWithClient(client ChatCompleter, model string, timeout time.Duration, contextTurns int) *OpenAIResponder {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIResponder{
		client:       client,
		model:        model,
		timeout:      timeout,
		contextTurns: contextTurns,
	}
}

func (r *OpenAIResponder) Respond(ctx context.Context, history []Message, message string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Messages:    r.buildMessages(history, message),
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// buildMessages keeps the last contextTurns user/assistant pairs.
func (r *OpenAIResponder) buildMessages(history []Message, message string) []openai.ChatCompletionMessage {
	if limit := r.contextTurns * 2; limit >= 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	for _, m := range history {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})
	return msgs
}
