package repository

import (
	"context"

	"edoc-portal/internal/domain/entity"
	domainRepo "edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/storage"
)

type activityRepository struct {
	collection *Collection[entity.Activity, string]
}

func NewActivityRepository(store storage.Store, capacity int) domainRepo.ActivityRepository {
	return &activityRepository{
		collection: NewCollection[entity.Activity, string](store, storage.KeyRecentActivities, nil,
			func(a entity.Activity) string { return a.ID }).WithCap(capacity),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return r.collection.Prepend(ctx, *activity)
}

func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	items, err := r.collection.Load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
