package assistant

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestKeywordResponder_FirstMatchWins(t *testing.T) {
	r := NewKeywordResponder()

	assert.True(t, strings.HasPrefix(r.Match("I have a HEADACHE"), "Headaches can have various causes"))
	// "head pain" also contains "pain"; the headache rule is listed first.
	assert.True(t, strings.HasPrefix(r.Match("bad head pain"), "Headaches can have various causes"))
	assert.True(t, strings.HasPrefix(r.Match("my knee hurts"), "Pain can indicate various conditions"))
	assert.True(t, strings.HasPrefix(r.Match("Can I schedule a visit?"), "I can help you with appointment scheduling!"))
	assert.True(t, strings.HasPrefix(r.Match("thanks!"), "You're very welcome!"))
	assert.Equal(t, defaultResponse, r.Match("what is the meaning of life"))
}

func TestFallbackResponder(t *testing.T) {
	r := NewFallbackResponder()

	diabetes := r.Match("Tell me about diabetic diets")
	assert.True(t, strings.HasPrefix(diabetes, "Diabetes is a chronic condition"))
	assert.True(t, strings.HasSuffix(diabetes, Disclaimer))

	generic := r.Match("knee surgery")
	assert.True(t, strings.HasPrefix(generic, `I understand you're asking about "knee surgery".`))
	assert.True(t, strings.HasSuffix(generic, Disclaimer))
}

type failingResponder struct{ err error }

func (f failingResponder) Respond(context.Context, []Message, string) (string, error) {
	return "", f.err
}

func TestAssistant_FallsBackOnError(t *testing.T) {
	a := New(failingResponder{err: errors.New("timeout")}, NewFallbackResponder(), quietLogger())

	answer := a.Reply(context.Background(), nil, "what is an MRI")
	assert.True(t, strings.HasPrefix(answer, "MRI (Magnetic Resonance Imaging)"))
}

func TestAssistant_ErrorResponseWhenBothFail(t *testing.T) {
	boom := failingResponder{err: errors.New("boom")}
	a := New(boom, boom, quietLogger())

	assert.Equal(t, ErrorResponse, a.Reply(context.Background(), nil, "hi"))
}

type fakeCompleter struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestOpenAIResponder_SendsRecentTurns(t *testing.T) {
	fake := &fakeCompleter{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "Drink water."}}},
	}}
	r := NewOpenAIResponderWithClient(fake, "", 0, 1)

	history := []Message{
		{Role: RoleUser, Content: "old question"},
		{Role: RoleAssistant, Content: "old answer"},
		{Role: RoleUser, Content: "recent question"},
		{Role: RoleAssistant, Content: "recent answer"},
	}
	answer, err := r.Respond(context.Background(), history, "I feel dizzy")
	require.NoError(t, err)
	assert.Equal(t, "Drink water.", answer)

	require.Len(t, fake.req.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.req.Messages[0].Role)
	assert.Equal(t, "recent question", fake.req.Messages[1].Content)
	assert.Equal(t, "I feel dizzy", fake.req.Messages[3].Content)
	assert.Equal(t, "gpt-4o-mini", fake.req.Model)
}

func TestOpenAIResponder_NoChoices(t *testing.T) {
	r := NewOpenAIResponderWithClient(&fakeCompleter{}, "gpt-4o-mini", 0, 5)

	_, err := r.Respond(context.Background(), nil, "hello")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
