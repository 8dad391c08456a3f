package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"edoc-portal/internal/assistant"
	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	recentChatLimit = 10
	anonymousOwner  = "anonymous"
)

var ErrSessionNotFound = errors.New("chat session not found")

type AssistantUsecase interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Recent(ctx context.Context) ([]dto.ChatEntryResponse, error)
	Session(ctx context.Context, sessionID string) ([]dto.ChatEntryResponse, error)
	ClearSession(ctx context.Context, sessionID string) (*dto.ClearSessionResponse, error)
	ExportSession(ctx context.Context, sessionID string) (*dto.ChatExport, error)
}

type assistantUsecase struct {
	log         *logrus.Logger
	historyRepo repository.ChatHistoryRepository
	assistant   *assistant.Assistant
	ids         *idClock
	now         func() time.Time
}

func NewAssistantUsecase(log *logrus.Logger, historyRepo repository.ChatHistoryRepository, a *assistant.Assistant) AssistantUsecase {
	return &assistantUsecase{
		log:         log,
		historyRepo: historyRepo,
		assistant:   a,
		ids:         newIDClock(time.Now),
		now:         time.Now,
	}
}

// owner keys chat history per signed-in user.
func owner(ctx context.Context) string {
	if actor, ok := service.ActorFromContext(ctx); ok {
		return actor.UserID.String()
	}
	return anonymousOwner
}

func (u *assistantUsecase) newSessionID() string {
	return fmt.Sprintf("session_%d_%s", u.ids.Next(), uuid.NewString()[:9])
}

func (u *assistantUsecase) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = u.newSessionID()
	}

	entries, err := u.historyRepo.FindAll(ctx, owner(ctx))
	if err != nil {
		u.log.Warnf("Failed to load chat history: %+v", err)
		return nil, err
	}

	history := make([]assistant.Message, 0, len(entries)*2)
	for _, e := range entries {
		if e.SessionID != sessionID {
			continue
		}
		history = append(history,
			assistant.Message{Role: assistant.RoleUser, Content: e.UserMessage},
			assistant.Message{Role: assistant.RoleAssistant, Content: e.AIResponse},
		)
	}

	answer := u.assistant.Reply(ctx, history, req.Message)

	entry := &entity.ChatEntry{
		SessionID:   sessionID,
		Timestamp:   u.now().UTC(),
		UserMessage: req.Message,
		AIResponse:  answer,
	}
	if err := u.historyRepo.Append(ctx, owner(ctx), entry); err != nil {
		u.log.Warnf("Failed to save chat history: %+v", err)
		return nil, err
	}

	return &dto.ChatResponse{
		Response:  answer,
		SessionID: sessionID,
		Timestamp: entry.Timestamp,
	}, nil
}

// Recent returns the last exchanges across sessions, newest first.
func (u *assistantUsecase) Recent(ctx context.Context) ([]dto.ChatEntryResponse, error) {
	entries, err := u.historyRepo.FindAll(ctx, owner(ctx))
	if err != nil {
		u.log.Warnf("Failed to load chat history: %+v", err)
		return nil, err
	}

	if len(entries) > recentChatLimit {
		entries = entries[len(entries)-recentChatLimit:]
	}
	recent := make([]entity.ChatEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		recent = append(recent, entries[i])
	}
	return converter.ChatEntriesToResponse(recent), nil
}

func (u *assistantUsecase) Session(ctx context.Context, sessionID string) ([]dto.ChatEntryResponse, error) {
	entries, err := u.sessionEntries(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return converter.ChatEntriesToResponse(entries), nil
}

func (u *assistantUsecase) sessionEntries(ctx context.Context, sessionID string) ([]entity.ChatEntry, error) {
	entries, err := u.historyRepo.FindAll(ctx, owner(ctx))
	if err != nil {
		u.log.Warnf("Failed to load chat history: %+v", err)
		return nil, err
	}

	out := []entity.ChatEntry{}
	for _, e := range entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ClearSession drops the session's exchanges and starts a new session.
func (u *assistantUsecase) ClearSession(ctx context.Context, sessionID string) (*dto.ClearSessionResponse, error) {
	removed, err := u.historyRepo.DeleteSession(ctx, owner(ctx), sessionID)
	if err != nil {
		u.log.Warnf("Failed to clear chat session: %+v", err)
		return nil, err
	}
	return &dto.ClearSessionResponse{
		Removed:      removed,
		NewSessionID: u.newSessionID(),
	}, nil
}

func (u *assistantUsecase) ExportSession(ctx context.Context, sessionID string) (*dto.ChatExport, error) {
	entries, err := u.sessionEntries(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrSessionNotFound
	}
	return &dto.ChatExport{
		SessionID: sessionID,
		Timestamp: u.now().UTC(),
		Messages:  converter.ChatEntriesToResponse(entries),
	}, nil
}
