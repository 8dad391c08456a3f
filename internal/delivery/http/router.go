package http

import (
	"net/http"

	"edoc-portal/internal/delivery/http/handler"
	"edoc-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	validationHandler  *handler.ValidationHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	teamHandler        *handler.TeamHandler
	reportHandler      *handler.ReportHandler
	assistantHandler   *handler.AssistantHandler
	analyticsHandler   *handler.AnalyticsHandler
	dashboardHandler   *handler.DashboardHandler
	uploadHandler      *handler.UploadHandler
	aiModelHandler     *handler.AIModelHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

type Handlers struct {
	Auth        *handler.AuthHandler
	Validation  *handler.ValidationHandler
	Patient     *handler.PatientHandler
	Appointment *handler.AppointmentHandler
	Team        *handler.TeamHandler
	Report      *handler.ReportHandler
	Assistant   *handler.AssistantHandler
	Analytics   *handler.AnalyticsHandler
	Dashboard   *handler.DashboardHandler
	Upload      *handler.UploadHandler
	AIModel     *handler.AIModelHandler
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        handlers.Auth,
		validationHandler:  handlers.Validation,
		patientHandler:     handlers.Patient,
		appointmentHandler: handlers.Appointment,
		teamHandler:        handlers.Team,
		reportHandler:      handlers.Report,
		assistantHandler:   handlers.Assistant,
		analyticsHandler:   handlers.Analytics,
		dashboardHandler:   handlers.Dashboard,
		uploadHandler:      handlers.Upload,
		aiModelHandler:     handlers.AIModel,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Preflight requests only need the CORS headers
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/password-reset", r.authHandler.RequestPasswordReset).Methods(http.MethodPost)
	auth.HandleFunc("/password-reset/confirm", r.authHandler.ConfirmPasswordReset).Methods(http.MethodPost)
	auth.HandleFunc("/verify-email", r.authHandler.VerifyEmail).Methods(http.MethodPost)
	auth.HandleFunc("/resend-verification", r.authHandler.ResendVerification).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/logout-all", r.authHandler.LogoutAll).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/validate", r.authHandler.ValidateToken).Methods(http.MethodGet)

	// Form validation (public, used by the signup, login and contact pages)
	validate := api.PathPrefix("/validate").Subrouter()
	validate.HandleFunc("/field", r.validationHandler.ValidateField).Methods(http.MethodPost)
	validate.HandleFunc("/{form}", r.validationHandler.ValidateForm).Methods(http.MethodPost)

	// Everything below requires a signed-in user
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/dashboard-data", r.dashboardHandler.GetDashboardData).Methods(http.MethodGet)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/stats", r.patientHandler.GetPatientStats).Methods(http.MethodGet)
	protected.HandleFunc("/patients/export", r.patientHandler.ExportPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/import", r.patientHandler.ImportPatients).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/stats", r.appointmentHandler.GetAppointmentStats).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/calendar", r.appointmentHandler.GetCalendar).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/export", r.appointmentHandler.ExportAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)

	// Team
	protected.HandleFunc("/team", r.teamHandler.GetAllTeamMembers).Methods(http.MethodGet)
	protected.HandleFunc("/team", r.teamHandler.CreateTeamMember).Methods(http.MethodPost)
	protected.HandleFunc("/team/stats", r.teamHandler.GetTeamStats).Methods(http.MethodGet)
	protected.HandleFunc("/team/departments", r.teamHandler.GetDepartmentPerformance).Methods(http.MethodGet)
	protected.HandleFunc("/team/export", r.teamHandler.ExportTeam).Methods(http.MethodGet)
	protected.HandleFunc("/team/import", r.teamHandler.ImportTeam).Methods(http.MethodPost)
	protected.HandleFunc("/team/{id:[0-9]+}", r.teamHandler.GetTeamMember).Methods(http.MethodGet)
	protected.HandleFunc("/team/{id:[0-9]+}", r.teamHandler.UpdateTeamMember).Methods(http.MethodPut)
	protected.HandleFunc("/team/{id:[0-9]+}", r.teamHandler.DeleteTeamMember).Methods(http.MethodDelete)

	// Reports
	protected.HandleFunc("/generate-report", r.reportHandler.GenerateReport).Methods(http.MethodPost)
	protected.HandleFunc("/reports", r.reportHandler.GetAllReports).Methods(http.MethodGet)
	protected.HandleFunc("/reports/recent", r.reportHandler.GetRecentReports).Methods(http.MethodGet)
	protected.HandleFunc("/reports/doctors", r.reportHandler.GetDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/reports/export", r.reportHandler.ExportReports).Methods(http.MethodGet)
	protected.HandleFunc("/reports/preview", r.reportHandler.PreviewReport).Methods(http.MethodPost)
	protected.HandleFunc("/reports/drafts", r.reportHandler.GetDrafts).Methods(http.MethodGet)
	protected.HandleFunc("/reports/drafts", r.reportHandler.SaveDraft).Methods(http.MethodPost)
	protected.HandleFunc("/reports/{id}", r.reportHandler.GetReport).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}/download", r.reportHandler.DownloadReport).Methods(http.MethodGet)
	protected.HandleFunc("/reports/{id}/annotations", r.reportHandler.AnnotateReport).Methods(http.MethodPost)

	// Report review (doctors only)
	review := protected.PathPrefix("/reports/{id}").Subrouter()
	review.Use(middleware.RequireDoctor)
	review.HandleFunc("/approve", r.reportHandler.ApproveReport).Methods(http.MethodPost)
	review.HandleFunc("/reject", r.reportHandler.RejectReport).Methods(http.MethodPost)

	// Assistant
	protected.HandleFunc("/assistant", r.assistantHandler.Chat).Methods(http.MethodPost)
	protected.HandleFunc("/assistant/history", r.assistantHandler.GetRecentChats).Methods(http.MethodGet)
	protected.HandleFunc("/assistant/sessions/{sessionId}", r.assistantHandler.GetSession).Methods(http.MethodGet)
	protected.HandleFunc("/assistant/sessions/{sessionId}", r.assistantHandler.ClearSession).Methods(http.MethodDelete)
	protected.HandleFunc("/assistant/sessions/{sessionId}/export", r.assistantHandler.ExportSession).Methods(http.MethodGet)

	// Analytics
	protected.HandleFunc("/analytics", r.analyticsHandler.GetAnalytics).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/summary", r.analyticsHandler.GetSummary).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/time", r.analyticsHandler.GetTimeAnalytics).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/insights", r.analyticsHandler.GetInsights).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/export", r.analyticsHandler.ExportAnalytics).Methods(http.MethodGet)

	// AI model catalog
	protected.HandleFunc("/ai-models", r.aiModelHandler.GetAllModels).Methods(http.MethodGet)
	protected.HandleFunc("/ai-models/{id}", r.aiModelHandler.GetModel).Methods(http.MethodGet)

	// Uploads
	protected.HandleFunc("/upload-image", r.uploadHandler.UploadImage).Methods(http.MethodPost)
	protected.HandleFunc("/upload-lab", r.uploadHandler.UploadLab).Methods(http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
