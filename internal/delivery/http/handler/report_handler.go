package handler

import (
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func reportFilter(r *http.Request) dto.ReportFilter {
	q := r.URL.Query()
	return dto.ReportFilter{
		Status:    q.Get("status"),
		DateRange: q.Get("dateRange"),
		Doctor:    q.Get("doctor"),
		Query:     q.Get("q"),
	}
}

// GetAllReports handles listing reports
// @Summary List reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, reviewed, approved, rejected, completed or all"
// @Param dateRange query string false "today, week, month, quarter, year or all"
// @Param doctor query string false "Doctor name"
// @Param q query string false "Search text"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) GetAllReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.List(r.Context(), reportFilter(r))
	if err != nil {
		h.writeError(w, err, "Failed to get reports")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Reports retrieved successfully", reports, &response.Meta{Total: len(reports)})
}

func (h *ReportHandler) GetRecentReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.Recent(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Recent reports retrieved successfully", reports)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to get report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.reportUsecase.Doctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GenerateReport handles AI report generation
// @Summary Generate an AI report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Generate Report Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /generate-report [post]
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReportRequest
	if !h.decodeGenerate(w, r, &req) {
		return
	}

	report, err := h.reportUsecase.Generate(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Error generating report. Please try again.")
		return
	}

	response.Success(w, http.StatusCreated, "Report generated successfully!", report)
}

func (h *ReportHandler) PreviewReport(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReportRequest
	if !h.decodeGenerate(w, r, &req) {
		return
	}

	report, err := h.reportUsecase.Preview(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to preview report")
		return
	}

	response.Success(w, http.StatusOK, "Report preview generated", report)
}

func (h *ReportHandler) decodeGenerate(w http.ResponseWriter, r *http.Request, req *dto.GenerateReportRequest) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return false
	}
	return true
}

// SaveDraft keeps an unfinished report. Only patient name and report type
// are required.
func (h *ReportHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	draft, err := h.reportUsecase.SaveDraft(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDraftFieldMissing:
			response.Error(w, http.StatusBadRequest, "Please fill in required fields before saving as draft", nil)
		default:
			response.InternalServerError(w, "Failed to save draft")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Report saved as draft!", draft)
}

func (h *ReportHandler) GetDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.reportUsecase.ListDrafts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get drafts")
		return
	}

	response.Success(w, http.StatusOK, "Drafts retrieved successfully", drafts)
}

// AnnotateReport handles adding a review note
// @Summary Annotate a report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body dto.AnnotateReportRequest true "Annotation"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id}/annotations [post]
func (h *ReportHandler) AnnotateReport(w http.ResponseWriter, r *http.Request) {
	var req dto.AnnotateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	report, err := h.reportUsecase.Annotate(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to add annotation")
		return
	}

	response.Success(w, http.StatusOK, "Annotation added successfully", report)
}

// ApproveReport handles a doctor approving a pending report
// @Summary Approve a report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reports/{id}/approve [post]
func (h *ReportHandler) ApproveReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.Approve(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to approve report")
		return
	}

	response.Success(w, http.StatusOK, "Report approved successfully", report)
}

func (h *ReportHandler) RejectReport(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	report, err := h.reportUsecase.Reject(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to reject report")
		return
	}

	response.Success(w, http.StatusOK, "Report rejected", report)
}

// DownloadReport sends the plain-text rendering of a report.
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	download, err := h.reportUsecase.Download(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to download report")
		return
	}

	response.Attachment(w, download.Filename, "text/plain; charset=utf-8", []byte(download.Body))
}

func (h *ReportHandler) ExportReports(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportUsecase.Export(r.Context(), reportFilter(r))
	if err != nil {
		h.writeError(w, err, "Failed to export reports")
		return
	}

	writeExport(w, "reports", export)
}

func (h *ReportHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrReportNotFound:
		response.NotFound(w, "Report not found")
	case usecase.ErrReportNotPending:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrInvalidDateRange:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
