package handler

import (
	"net/http"

	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	data, err := h.analyticsUsecase.Data(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get analytics")
		return
	}

	response.Success(w, http.StatusOK, "Analytics retrieved successfully", data)
}

func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get analytics summary")
		return
	}

	response.Success(w, http.StatusOK, "Analytics summary retrieved successfully", summary)
}

func (h *AnalyticsHandler) GetTimeAnalytics(w http.ResponseWriter, r *http.Request) {
	times, err := h.analyticsUsecase.TimeAnalytics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get time analytics")
		return
	}

	response.Success(w, http.StatusOK, "Time analytics retrieved successfully", times)
}

func (h *AnalyticsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.analyticsUsecase.Insights(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get insights")
		return
	}

	response.Success(w, http.StatusOK, "Insights retrieved successfully", insights)
}

func (h *AnalyticsHandler) ExportAnalytics(w http.ResponseWriter, r *http.Request) {
	export, err := h.analyticsUsecase.Export(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export analytics")
		return
	}

	writeExport(w, "analytics", export)
}
