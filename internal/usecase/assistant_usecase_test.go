package usecase

import (
	"context"
	"strings"
	"testing"

	"edoc-portal/internal/assistant"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/repository"
	"edoc-portal/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingResponder echoes the message and remembers the history it saw.
type recordingResponder struct {
	histories [][]assistant.Message
}

func (r *recordingResponder) Respond(ctx context.Context, history []assistant.Message, message string) (string, error) {
	r.histories = append(r.histories, history)
	return "echo: " + message, nil
}

func newTestAssistantUsecase(env *testEnv, primary assistant.Responder) *assistantUsecase {
	a := assistant.New(primary, assistant.NewFallbackResponder(), env.log)
	u := NewAssistantUsecase(env.log, repository.NewChatHistoryRepository(env.store, 50), a).(*assistantUsecase)
	u.now = clockAt(fixedNow)
	return u
}

func TestAssistantUsecase_ChatStartsSession(t *testing.T) {
	u := newTestAssistantUsecase(newTestEnv(), assistant.NewKeywordResponder())

	resp, err := u.Chat(context.Background(), &dto.ChatRequest{Message: "I have a headache"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.SessionID, "session_"))
	assert.True(t, strings.HasPrefix(resp.Response, "Headaches can have various causes"))
	assert.Equal(t, fixedNow, resp.Timestamp)
}

func TestAssistantUsecase_HistoryIsPerSession(t *testing.T) {
	ctx := context.Background()
	rec := &recordingResponder{}
	u := newTestAssistantUsecase(newTestEnv(), rec)

	first, err := u.Chat(ctx, &dto.ChatRequest{Message: "one"})
	require.NoError(t, err)
	_, err = u.Chat(ctx, &dto.ChatRequest{Message: "other", SessionID: "session_other"})
	require.NoError(t, err)
	_, err = u.Chat(ctx, &dto.ChatRequest{Message: "two", SessionID: first.SessionID})
	require.NoError(t, err)

	require.Len(t, rec.histories, 3)
	assert.Equal(t, []assistant.Message{
		{Role: assistant.RoleUser, Content: "one"},
		{Role: assistant.RoleAssistant, Content: "echo: one"},
	}, rec.histories[2])

	session, err := u.Session(ctx, first.SessionID)
	require.NoError(t, err)
	require.Len(t, session, 2)
	assert.Equal(t, "one", session[0].UserMessage)
	assert.Equal(t, "two", session[1].UserMessage)
}

func TestAssistantUsecase_RecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	u := newTestAssistantUsecase(newTestEnv(), &recordingResponder{})

	for i := 0; i < 12; i++ {
		_, err := u.Chat(ctx, &dto.ChatRequest{Message: string(rune('a' + i)), SessionID: "s1"})
		require.NoError(t, err)
	}

	recent, err := u.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "l", recent[0].UserMessage)
	assert.Equal(t, "c", recent[9].UserMessage)
}

func TestAssistantUsecase_HistoryIsPerUser(t *testing.T) {
	u := newTestAssistantUsecase(newTestEnv(), &recordingResponder{})
	alice := service.WithActor(context.Background(), service.Actor{UserID: uuid.New(), Email: "alice@example.com"})
	bob := service.WithActor(context.Background(), service.Actor{UserID: uuid.New(), Email: "bob@example.com"})

	_, err := u.Chat(alice, &dto.ChatRequest{Message: "private", SessionID: "s1"})
	require.NoError(t, err)

	recent, err := u.Recent(bob)
	require.NoError(t, err)
	assert.Empty(t, recent)

	recent, err = u.Recent(alice)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestAssistantUsecase_ClearAndExport(t *testing.T) {
	ctx := context.Background()
	u := newTestAssistantUsecase(newTestEnv(), &recordingResponder{})

	for _, msg := range []string{"a", "b"} {
		_, err := u.Chat(ctx, &dto.ChatRequest{Message: msg, SessionID: "s1"})
		require.NoError(t, err)
	}
	_, err := u.Chat(ctx, &dto.ChatRequest{Message: "keep", SessionID: "s2"})
	require.NoError(t, err)

	export, err := u.ExportSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", export.SessionID)
	assert.Len(t, export.Messages, 2)

	cleared, err := u.ClearSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, cleared.Removed)
	assert.NotEqual(t, "s1", cleared.NewSessionID)

	_, err = u.ExportSession(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	kept, err := u.Session(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
