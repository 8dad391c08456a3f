package repository

import (
	"context"

	"edoc-portal/internal/domain/entity"
	domainRepo "edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/storage"
)

type chatHistoryRepository struct {
	store    storage.Store
	capacity int
}

// NewChatHistoryRepository keeps each owner's history under its own
// namespace, truncated to the last capacity entries.
func NewChatHistoryRepository(store storage.Store, capacity int) domainRepo.ChatHistoryRepository {
	return &chatHistoryRepository{store: store, capacity: capacity}
}

func (r *chatHistoryRepository) collection(owner string) *Collection[entity.ChatEntry, string] {
	scoped := storage.NewNamespaced(r.store, "user:"+owner+":")
	return NewCollection[entity.ChatEntry, string](scoped, storage.KeyChatHistory, nil,
		func(e entity.ChatEntry) string { return e.SessionID }).WithCap(r.capacity)
}

func (r *chatHistoryRepository) FindAll(ctx context.Context, owner string) ([]entity.ChatEntry, error) {
	return r.collection(owner).Load(ctx)
}

func (r *chatHistoryRepository) Append(ctx context.Context, owner string, entry *entity.ChatEntry) error {
	return r.collection(owner).Add(ctx, *entry)
}

func (r *chatHistoryRepository) DeleteSession(ctx context.Context, owner, sessionID string) (int, error) {
	return r.collection(owner).RemoveWhere(ctx, func(e entity.ChatEntry) bool {
		return e.SessionID == sessionID
	})
}
