package repository

import (
	"context"

	"edoc-portal/internal/domain/entity"
)

type AnalyticsRepository interface {
	Get(ctx context.Context) (*entity.AnalyticsData, error)
	Save(ctx context.Context, data *entity.AnalyticsData) error
}
