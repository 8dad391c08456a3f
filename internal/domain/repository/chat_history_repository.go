package repository

import (
	"context"

	"edoc-portal/internal/domain/entity"
)

// ChatHistoryRepository stores assistant exchanges per owner, oldest first.
type ChatHistoryRepository interface {
	FindAll(ctx context.Context, owner string) ([]entity.ChatEntry, error)
	Append(ctx context.Context, owner string, entry *entity.ChatEntry) error
	DeleteSession(ctx context.Context, owner, sessionID string) (int, error)
}
