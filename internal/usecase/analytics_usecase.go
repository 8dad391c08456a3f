package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	InsightPositive = "positive"
	InsightWarning  = "warning"
)

var (
	confirmationRateThreshold = 0.9
	monthlyRevenueThreshold   = decimal.NewFromInt(10000)
	satisfactionThreshold     = 4.5
	waitTimeThreshold         = 15
)

type AnalyticsUsecase interface {
	Data(ctx context.Context) (*entity.AnalyticsData, error)
	Summary(ctx context.Context) (*dto.AnalyticsSummaryResponse, error)
	TimeAnalytics(ctx context.Context) (*dto.TimeAnalyticsResponse, error)
	Insights(ctx context.Context) ([]entity.Insight, error)
	Export(ctx context.Context) (*dto.AnalyticsExport, error)
}

type analyticsUsecase struct {
	log           *logrus.Logger
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

func NewAnalyticsUsecase(log *logrus.Logger, analyticsRepo repository.AnalyticsRepository) AnalyticsUsecase {
	return &analyticsUsecase{
		log:           log,
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

func (u *analyticsUsecase) Data(ctx context.Context) (*entity.AnalyticsData, error) {
	data, err := u.analyticsRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to load analytics: %+v", err)
		return nil, err
	}
	return data, nil
}

func (u *analyticsUsecase) Summary(ctx context.Context) (*dto.AnalyticsSummaryResponse, error) {
	data, err := u.Data(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyticsSummaryResponse{
		TotalAppointments:   data.Appointments.Total,
		TotalPatients:       data.Patients.Total,
		TotalRevenue:        data.Revenue.Total,
		FormattedRevenue:    FormatUSD(data.Revenue.Total),
		PatientSatisfaction: fmt.Sprintf("%.1f", data.Performance.PatientSatisfaction),
	}, nil
}

// TimeAnalytics reports the clinic's scheduling figures. Peak hours and the
// busiest day are not tracked per appointment and stay fixed.
func (u *analyticsUsecase) TimeAnalytics(ctx context.Context) (*dto.TimeAnalyticsResponse, error) {
	data, err := u.Data(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TimeAnalyticsResponse{
		PeakHours:      "9:00 AM - 11:00 AM",
		AvgWaitTime:    fmt.Sprintf("%d minutes", data.Performance.WaitTime),
		BusiestDay:     "Wednesday",
		CompletionRate: formatNumber(data.Performance.AppointmentCompletion) + "%",
	}, nil
}

func (u *analyticsUsecase) Insights(ctx context.Context) ([]entity.Insight, error) {
	data, err := u.Data(ctx)
	if err != nil {
		return nil, err
	}
	return GenerateInsights(data), nil
}

func GenerateInsights(data *entity.AnalyticsData) []entity.Insight {
	insights := []entity.Insight{}

	if a := data.Appointments; a.Total > 0 {
		rate := float64(a.Confirmed) / float64(a.Total)
		if rate > confirmationRateThreshold {
			insights = append(insights, entity.Insight{
				Type:        InsightPositive,
				Title:       "High Confirmation Rate",
				Description: fmt.Sprintf("Excellent appointment confirmation rate of %d%%", int(rate*100+0.5)),
			})
		}
	}

	if monthly := data.Revenue.Monthly; len(monthly) > 0 {
		avg := decimal.Sum(monthly[0], monthly[1:]...).Div(decimal.NewFromInt(int64(len(monthly))))
		if avg.GreaterThan(monthlyRevenueThreshold) {
			insights = append(insights, entity.Insight{
				Type:        InsightPositive,
				Title:       "Strong Revenue Performance",
				Description: "Average monthly revenue of " + FormatUSD(avg),
			})
		}
	}

	if p := data.Performance; p.PatientSatisfaction >= satisfactionThreshold {
		insights = append(insights, entity.Insight{
			Type:        InsightPositive,
			Title:       "High Patient Satisfaction",
			Description: "Patient satisfaction score of " + formatNumber(p.PatientSatisfaction) + "/5.0",
		})
	}

	if p := data.Performance; p.WaitTime > waitTimeThreshold {
		insights = append(insights, entity.Insight{
			Type:        InsightWarning,
			Title:       "Wait Time Alert",
			Description: fmt.Sprintf("Average wait time of %d minutes - consider optimization", p.WaitTime),
		})
	}

	return insights
}

func (u *analyticsUsecase) Export(ctx context.Context) (*dto.AnalyticsExport, error) {
	data, err := u.Data(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyticsExport{
		ExportDate: u.now().UTC(),
		Analytics:  data,
	}, nil
}

// FormatUSD renders whole dollars with thousands separators, e.g. $125,000.
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
