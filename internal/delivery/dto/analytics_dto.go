package dto

import (
	"time"

	"edoc-portal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type AnalyticsSummaryResponse struct {
	TotalAppointments   int             `json:"totalAppointments"`
	TotalPatients       int             `json:"totalPatients"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	FormattedRevenue    string          `json:"formattedRevenue"`
	PatientSatisfaction string          `json:"patientSatisfaction"`
}

type TimeAnalyticsResponse struct {
	PeakHours      string `json:"peakHours"`
	AvgWaitTime    string `json:"avgWaitTime"`
	BusiestDay     string `json:"busiestDay"`
	CompletionRate string `json:"completionRate"`
}

type AnalyticsExport struct {
	ExportDate time.Time             `json:"exportDate"`
	Analytics  *entity.AnalyticsData `json:"analytics"`
}
