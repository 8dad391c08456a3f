package usecase

import (
	"context"
	"testing"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelIDs(models []entity.AIModel) []string {
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return ids
}

func TestAIModelUsecase_List(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u := NewAIModelUsecase(env.log, repository.NewAIModelRepository(env.store))

	tests := []struct {
		name     string
		category string
		text     string
		want     []string
	}{
		{"everything", "", "", []string{"diagnostic", "imaging", "treatment", "drug-interaction", "research", "symptom"}},
		{"all category", "all", "", []string{"diagnostic", "imaging", "treatment", "drug-interaction", "research", "symptom"}},
		{"diagnosis category", "diagnosis", "", []string{"diagnostic", "symptom"}},
		{"category ignores case", "Imaging", "", []string{"imaging"}},
		{"title search", "", "checker", []string{"drug-interaction", "symptom"}},
		{"description search", "", "x-rays", []string{"imaging"}},
		{"category and search", "diagnosis", "knowledge graphs", []string{"symptom"}},
		{"no match", "pharmacy", "imaging", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models, err := u.List(ctx, tt.category, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, modelIDs(models))
		})
	}
}

func TestAIModelUsecase_Get(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u := NewAIModelUsecase(env.log, repository.NewAIModelRepository(env.store))

	model, err := u.Get(ctx, "imaging")
	require.NoError(t, err)
	assert.Equal(t, "Medical Imaging Analyzer", model.Title)
	assert.Equal(t, "v3.0.1", model.Specs.APIVersion)
	require.Len(t, model.Metrics, 4)
	assert.Equal(t, entity.ModelMetric{Label: "Accuracy", Value: "96.8%"}, model.Metrics[0])
	assert.Equal(t, "Specificity", model.Metrics[3].Label)
	assert.Len(t, model.UseCases, 5)
	assert.Contains(t, model.Limitations, "Requires radiologist review")
	assert.Equal(t, "ai-reports.html?model=imaging", model.LaunchURL)

	_, err = u.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrModelNotFound)
}
