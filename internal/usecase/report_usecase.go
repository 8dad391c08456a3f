package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"
	"edoc-portal/pkg/listquery"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dateRangeToday   = "today"
	dateRangeWeek    = "week"
	dateRangeMonth   = "month"
	dateRangeQuarter = "quarter"
	dateRangeYear    = "year"

	defaultGeneratedBy = "E-Doc AI"
	recentReportsLimit = 5
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrReportNotPending  = errors.New("only pending reports can be reviewed")
	ErrInvalidDateRange  = errors.New("dateRange must be one of: all, today, week, month, quarter, year")
	ErrDraftFieldMissing = errors.New("please fill in required fields before saving as draft")
)

type ReportUsecase interface {
	List(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportResponse, error)
	Recent(ctx context.Context) ([]dto.ReportResponse, error)
	Get(ctx context.Context, id string) (*dto.ReportResponse, error)
	Doctors(ctx context.Context) ([]string, error)
	Generate(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	Preview(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	SaveDraft(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	ListDrafts(ctx context.Context) ([]dto.ReportResponse, error)
	Annotate(ctx context.Context, id string, req *dto.AnnotateReportRequest) (*dto.ReportResponse, error)
	Approve(ctx context.Context, id string) (*dto.ReportResponse, error)
	Reject(ctx context.Context, id string, req *dto.RejectReportRequest) (*dto.ReportResponse, error)
	Download(ctx context.Context, id string) (*dto.ReportDownload, error)
	Export(ctx context.Context, filter dto.ReportFilter) (*dto.ReportExport, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.ReportRepository
	draftRepo  repository.DraftRepository
	userRepo   repository.UserRepository
	activity   service.ActivityService
	ids        *idClock
	now        func() time.Time
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	draftRepo repository.DraftRepository,
	userRepo repository.UserRepository,
	activity service.ActivityService,
) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
		draftRepo:  draftRepo,
		userRepo:   userRepo,
		activity:   activity,
		ids:        newIDClock(time.Now),
		now:        time.Now,
	}
}

func (u *reportUsecase) List(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportResponse, error) {
	reports, err := u.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return converter.ReportsToResponse(reports), nil
}

func (u *reportUsecase) filtered(ctx context.Context, filter dto.ReportFilter) ([]entity.Report, error) {
	start, err := u.rangeStart(filter.DateRange)
	if err != nil {
		return nil, err
	}

	reports, err := u.reportRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load reports: %+v", err)
		return nil, err
	}

	out := make([]entity.Report, 0, len(reports))
	for _, r := range reports {
		if filter.Status != "" && filter.Status != listquery.StatusAll && r.Status != filter.Status {
			continue
		}
		if filter.Doctor != "" && filter.Doctor != listquery.StatusAll && r.DoctorName != filter.Doctor {
			continue
		}
		if !start.IsZero() {
			date, err := time.ParseInLocation("2006-01-02", r.Date, start.Location())
			if err != nil || date.Before(start) {
				continue
			}
		}
		out = append(out, r)
	}
	return listquery.Search(out, filter.Query, entity.Report.SearchFields), nil
}

// rangeStart returns the first day a date range covers; zero means no bound.
// Weeks start on Sunday.
func (u *reportUsecase) rangeStart(dateRange string) (time.Time, error) {
	now := u.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch dateRange {
	case "", listquery.StatusAll:
		return time.Time{}, nil
	case dateRangeToday:
		return today, nil
	case dateRangeWeek:
		return today.AddDate(0, 0, -int(today.Weekday())), nil
	case dateRangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case dateRangeQuarter:
		firstMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), firstMonth, 1, 0, 0, 0, 0, now.Location()), nil
	case dateRangeYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, ErrInvalidDateRange
}

func (u *reportUsecase) Recent(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := u.reportRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load reports: %+v", err)
		return nil, err
	}
	if len(reports) > recentReportsLimit {
		reports = reports[:recentReportsLimit]
	}
	return converter.ReportsToResponse(reports), nil
}

func (u *reportUsecase) Get(ctx context.Context, id string) (*dto.ReportResponse, error) {
	report, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) find(ctx context.Context, id string) (*entity.Report, error) {
	report, err := u.reportRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find report: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// Doctors lists the distinct doctor names in first-seen order.
func (u *reportUsecase) Doctors(ctx context.Context) ([]string, error) {
	reports, err := u.reportRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load reports: %+v", err)
		return nil, err
	}

	seen := make(map[string]bool)
	doctors := []string{}
	for _, r := range reports {
		if r.DoctorName == "" || seen[r.DoctorName] {
			continue
		}
		seen[r.DoctorName] = true
		doctors = append(doctors, r.DoctorName)
	}
	return doctors, nil
}

func (u *reportUsecase) Generate(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	report := u.buildReport(ctx, req, "RPT", entity.ReportStatusCompleted)
	report.Content = reportContent(req.ReportType, req.PatientName, u.now())

	if err := u.reportRepo.Create(ctx, report); err != nil {
		u.log.Warnf("Failed to save report: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityReportGenerate, "report", report.ID,
		"AI report generated for "+report.PatientName)
	return converter.ReportToResponse(report), nil
}

// Preview renders a report without saving it.
func (u *reportUsecase) Preview(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	report := u.buildReport(ctx, req, "RPT", entity.ReportStatusCompleted)
	report.Content = reportContent(req.ReportType, req.PatientName, u.now())
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) SaveDraft(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if strings.TrimSpace(req.PatientName) == "" || strings.TrimSpace(req.ReportType) == "" {
		return nil, ErrDraftFieldMissing
	}

	draft := u.buildReport(ctx, req, "DRAFT", entity.ReportStatusDraft)
	if err := u.draftRepo.Create(ctx, draft); err != nil {
		u.log.Warnf("Failed to save draft: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityReportDraft, "report", draft.ID,
		"Report draft saved for "+draft.PatientName)
	return converter.ReportToResponse(draft), nil
}

func (u *reportUsecase) ListDrafts(ctx context.Context) ([]dto.ReportResponse, error) {
	drafts, err := u.draftRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load drafts: %+v", err)
		return nil, err
	}
	return converter.ReportsToResponse(drafts), nil
}

func (u *reportUsecase) buildReport(ctx context.Context, req *dto.GenerateReportRequest, prefix, status string) *entity.Report {
	now := u.now()
	patientID := req.PatientID
	if patientID == "" {
		patientID = "N/A"
	}
	return &entity.Report{
		ID:          fmt.Sprintf("%s%d", prefix, u.ids.Next()),
		PatientName: req.PatientName,
		PatientID:   patientID,
		ReportType:  req.ReportType,
		AIModel:     req.AIModel,
		Priority:    req.Priority,
		Department:  req.Department,
		Notes:       req.Notes,
		Status:      status,
		Date:        now.Format("2006-01-02"),
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		GeneratedBy: u.displayName(ctx),
		Annotations: []entity.Annotation{},
	}
}

func (u *reportUsecase) Annotate(ctx context.Context, id string, req *dto.AnnotateReportRequest) (*dto.ReportResponse, error) {
	kind := req.Type
	if kind == "" {
		kind = entity.AnnotationReview
	}
	report, err := u.update(ctx, id, func(r *entity.Report) error {
		r.Annotations = append(r.Annotations, u.annotation(ctx, r, kind, req.Comment))
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityReportAnnotate, "report", id,
		"Annotation added to report for "+report.PatientName)
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) Approve(ctx context.Context, id string) (*dto.ReportResponse, error) {
	report, err := u.update(ctx, id, func(r *entity.Report) error {
		if r.Status != entity.ReportStatusPending {
			return ErrReportNotPending
		}
		r.Status = entity.ReportStatusApproved
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityReportApprove, "report", id,
		"Report approved for "+report.PatientName)
	return converter.ReportToResponse(report), nil
}

// Reject records the reason as a rejection annotation.
func (u *reportUsecase) Reject(ctx context.Context, id string, req *dto.RejectReportRequest) (*dto.ReportResponse, error) {
	report, err := u.update(ctx, id, func(r *entity.Report) error {
		if r.Status != entity.ReportStatusPending {
			return ErrReportNotPending
		}
		r.Status = entity.ReportStatusRejected
		r.Annotations = append(r.Annotations, u.annotation(ctx, r, entity.AnnotationRejection, req.Reason))
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityReportReject, "report", id,
		"Report rejected for "+report.PatientName)
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) update(ctx context.Context, id string, patch func(*entity.Report) error) (*entity.Report, error) {
	report, err := u.reportRepo.Update(ctx, id, patch)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, ErrReportNotFound
	case errors.Is(err, ErrReportNotPending):
		return nil, err
	case err != nil:
		u.log.Warnf("Failed to update report: %+v", err)
		return nil, err
	}
	return report, nil
}

func (u *reportUsecase) annotation(ctx context.Context, r *entity.Report, kind, comment string) entity.Annotation {
	next := 1
	for _, a := range r.Annotations {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return entity.Annotation{
		ID:      next,
		Doctor:  u.displayName(ctx),
		Date:    u.now().Format("2006-01-02"),
		Comment: comment,
		Type:    kind,
	}
}

func (u *reportUsecase) Download(ctx context.Context, id string) (*dto.ReportDownload, error) {
	report, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	date := report.Date
	if ts, err := time.Parse(time.RFC3339Nano, report.Timestamp); err == nil {
		date = ts.Format("1/2/2006")
	} else if d, err := time.Parse("2006-01-02", report.Date); err == nil {
		date = d.Format("1/2/2006")
	}

	generatedBy := report.GeneratedBy
	if generatedBy == "" {
		generatedBy = report.DoctorName
	}

	content := report.Content
	if content == "" {
		content = fmt.Sprintf("Summary: %s\nFindings: %s\nRecommendations: %s",
			report.Summary, report.Findings, report.Recommendations)
	}

	body := fmt.Sprintf("E-Doc AI Report\n===============\n\nPatient: %s\nReport Type: %s\nDate: %s\nGenerated By: %s\n\n%s",
		report.PatientName, report.ReportType, date, generatedBy, content)

	return &dto.ReportDownload{
		Filename: "report-" + report.ID + ".txt",
		Body:     body,
	}, nil
}

func (u *reportUsecase) Export(ctx context.Context, filter dto.ReportFilter) (*dto.ReportExport, error) {
	reports, err := u.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ReportExport{
		ExportDate: u.now().UTC(),
		Filters:    filter,
		Reports:    converter.ReportsToResponse(reports),
	}, nil
}

// displayName is how the acting user signs reports and annotations.
func (u *reportUsecase) displayName(ctx context.Context) string {
	actor, ok := service.ActorFromContext(ctx)
	if !ok {
		return defaultGeneratedBy
	}

	var db *gorm.DB
	if u.db != nil {
		db = u.db.WithContext(ctx)
	}
	user, err := u.userRepo.FindByID(db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
	}
	if user == nil {
		return actor.Email
	}

	name := user.FullName()
	if user.Role == entity.RoleDoctor && !strings.HasPrefix(name, "Dr.") {
		name = "Dr. " + name
	}
	return name
}

type reportTemplate struct {
	title   string
	section string
	body    string
}

var reportTemplates = map[string]reportTemplate{
	"consultation": {"General Consultation Report", "Clinical Assessment", "Based on the provided medical data and AI analysis, this consultation report provides a comprehensive overview of the patient's current health status."},
	"diagnostic":   {"Diagnostic Report", "Diagnostic Analysis", "Advanced AI diagnostic analysis has been performed on the provided medical data to identify potential conditions and provide differential diagnoses."},
	"treatment":    {"Treatment Plan Report", "Treatment Analysis", "AI-powered treatment planning has analyzed the patient's condition and generated evidence-based treatment recommendations."},
	"imaging":      {"Medical Imaging Report", "Imaging Analysis", "Advanced computer vision AI has analyzed the provided medical images to identify anatomical structures and potential abnormalities."},
}

var defaultReportTemplate = reportTemplate{"Medical Report", "Report Summary", "AI analysis has been completed on the provided medical data to generate this comprehensive report."}

func reportContent(reportType, patientName string, now time.Time) string {
	tpl, ok := reportTemplates[reportType]
	if !ok {
		tpl = defaultReportTemplate
	}
	return fmt.Sprintf("<h2>%s</h2><p><strong>Patient:</strong> %s</p><p><strong>Date:</strong> %s</p><h3>%s</h3><p>%s</p>",
		tpl.title, html.EscapeString(patientName), now.Format("1/2/2006"), tpl.section, tpl.body)
}
