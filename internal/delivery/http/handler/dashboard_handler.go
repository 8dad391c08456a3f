package handler

import (
	"net/http"

	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetDashboardData handles the dashboard overview
// @Summary Dashboard overview
// @Description Record counts, recent activity and today's appointments
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard-data [get]
func (h *DashboardHandler) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardUsecase.Overview(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard data")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard data retrieved successfully", overview)
}
