package repository

import (
	"context"

	"edoc-portal/internal/domain/entity"
	domainRepo "edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/storage"
)

type analyticsRepository struct {
	document *Document[entity.AnalyticsData]
}

func NewAnalyticsRepository(store storage.Store) domainRepo.AnalyticsRepository {
	return &analyticsRepository{
		document: NewDocument(store, storage.KeyAnalytics, DefaultAnalytics),
	}
}

func (r *analyticsRepository) Get(ctx context.Context) (*entity.AnalyticsData, error) {
	data, err := r.document.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *analyticsRepository) Save(ctx context.Context, data *entity.AnalyticsData) error {
	return r.document.Save(ctx, *data)
}
