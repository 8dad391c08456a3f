package usecase

import (
	"context"
	"testing"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.Zero, "$0"},
		{decimal.NewFromInt(999), "$999"},
		{decimal.NewFromInt(125000), "$125,000"},
		{decimal.NewFromInt(1000000), "$1,000,000"},
		{decimal.RequireFromString("1234.5"), "$1,235"},
		{decimal.RequireFromString("9641.6667"), "$9,642"},
		{decimal.NewFromInt(-1500), "-$1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.amount))
		})
	}
}

func TestGenerateInsights_SeedData(t *testing.T) {
	data := repository.DefaultAnalytics()

	insights := GenerateInsights(&data)
	require.Len(t, insights, 2)
	assert.Equal(t, entity.Insight{
		Type:        InsightPositive,
		Title:       "High Confirmation Rate",
		Description: "Excellent appointment confirmation rate of 91%",
	}, insights[0])
	assert.Equal(t, "Patient satisfaction score of 4.7/5.0", insights[1].Description)
}

func TestGenerateInsights_Thresholds(t *testing.T) {
	data := entity.AnalyticsData{
		Revenue: entity.RevenueMetrics{
			Monthly: []decimal.Decimal{decimal.NewFromInt(11000), decimal.NewFromInt(13000)},
		},
		Performance: entity.PerformanceMetrics{
			PatientSatisfaction: 4.4,
			WaitTime:            20,
		},
	}

	insights := GenerateInsights(&data)
	require.Len(t, insights, 2)
	assert.Equal(t, "Strong Revenue Performance", insights[0].Title)
	assert.Equal(t, "Average monthly revenue of $12,000", insights[0].Description)
	assert.Equal(t, InsightWarning, insights[1].Type)
	assert.Equal(t, "Average wait time of 20 minutes - consider optimization", insights[1].Description)
}

func TestGenerateInsights_Empty(t *testing.T) {
	insights := GenerateInsights(&entity.AnalyticsData{})
	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestAnalyticsUsecase_SummaryAndTime(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u := NewAnalyticsUsecase(env.log, repository.NewAnalyticsRepository(env.store))

	summary, err := u.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 156, summary.TotalAppointments)
	assert.Equal(t, 89, summary.TotalPatients)
	assert.Equal(t, "$125,000", summary.FormattedRevenue)
	assert.Equal(t, "4.7", summary.PatientSatisfaction)

	timing, err := u.TimeAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12 minutes", timing.AvgWaitTime)
	assert.Equal(t, "94.2%", timing.CompletionRate)
	assert.Equal(t, "Wednesday", timing.BusiestDay)

	insights, err := u.Insights(ctx)
	require.NoError(t, err)
	assert.Len(t, insights, 2)
}
