package usecase

import (
	"context"
	"errors"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/pkg/listquery"

	"github.com/sirupsen/logrus"
)

var ErrModelNotFound = errors.New("model information not found")

// AIModelUsecase serves the read-only AI model catalog.
type AIModelUsecase interface {
	// List filters by category ("all" or empty for every model) and searches
	// titles and descriptions.
	List(ctx context.Context, category, text string) ([]entity.AIModel, error)
	Get(ctx context.Context, id string) (*entity.AIModel, error)
}

type aiModelUsecase struct {
	log       *logrus.Logger
	modelRepo repository.AIModelRepository
}

func NewAIModelUsecase(log *logrus.Logger, modelRepo repository.AIModelRepository) AIModelUsecase {
	return &aiModelUsecase{
		log:       log,
		modelRepo: modelRepo,
	}
}

func (u *aiModelUsecase) List(ctx context.Context, category, text string) ([]entity.AIModel, error) {
	models, err := u.modelRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load AI models: %+v", err)
		return nil, err
	}

	q := listquery.Query{Status: category, Text: text}
	return listquery.Apply(models, q,
		func(m entity.AIModel) string { return m.Category },
		entity.AIModel.SearchFields), nil
}

func (u *aiModelUsecase) Get(ctx context.Context, id string) (*entity.AIModel, error) {
	model, err := u.modelRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find AI model: %+v", err)
		return nil, err
	}
	if model == nil {
		return nil, ErrModelNotFound
	}
	return model, nil
}
