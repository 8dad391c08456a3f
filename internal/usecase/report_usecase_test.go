package usecase

import (
	"context"
	"strings"
	"testing"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/repository"
	"edoc-portal/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportUsecase(env *testEnv) *reportUsecase {
	u := NewReportUsecase(nil, env.log,
		repository.NewReportRepository(env.store, 100),
		repository.NewDraftRepository(env.store),
		env.users, env.activity).(*reportUsecase)
	u.now = clockAt(fixedNow)
	u.ids = newIDClock(clockAt(fixedNow))
	return u
}

func reportIDs(reports []dto.ReportResponse) []string {
	ids := make([]string, len(reports))
	for i, r := range reports {
		ids[i] = r.ID
	}
	return ids
}

func TestReportUsecase_ListFilters(t *testing.T) {
	ctx := context.Background()
	u := newTestReportUsecase(newTestEnv())

	tests := []struct {
		name   string
		filter dto.ReportFilter
		want   []string
	}{
		{"no filter", dto.ReportFilter{}, []string{"1", "2", "3"}},
		{"all", dto.ReportFilter{Status: "all", DateRange: "all", Doctor: "all"}, []string{"1", "2", "3"}},
		{"pending", dto.ReportFilter{Status: entity.ReportStatusPending}, []string{"1"}},
		{"doctor", dto.ReportFilter{Doctor: "Dr. Michael Chen"}, []string{"2"}},
		{"search", dto.ReportFilter{Query: "BLOOD"}, []string{"3"}},
		{"today", dto.ReportFilter{DateRange: "today"}, []string{}},
		{"week starts on sunday", dto.ReportFilter{DateRange: "week"}, []string{"1", "2"}},
		{"month", dto.ReportFilter{DateRange: "month"}, []string{"1", "2", "3"}},
		{"quarter", dto.ReportFilter{DateRange: "quarter"}, []string{"1", "2", "3"}},
		{"combined", dto.ReportFilter{Status: entity.ReportStatusReviewed, DateRange: "week", Query: "mri"}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, err := u.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reportIDs(reports))
		})
	}
}

func TestReportUsecase_InvalidDateRange(t *testing.T) {
	u := newTestReportUsecase(newTestEnv())

	_, err := u.List(context.Background(), dto.ReportFilter{DateRange: "decade"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestReportUsecase_Doctors(t *testing.T) {
	u := newTestReportUsecase(newTestEnv())

	doctors, err := u.Doctors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dr. Sarah Johnson", "Dr. Michael Chen", "Dr. Emily Rodriguez"}, doctors)
}

func TestReportUsecase_GenerateAndDownload(t *testing.T) {
	env := newTestEnv()
	u := newTestReportUsecase(env)

	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, Email: "house@example.com", FirstName: "Gregory", LastName: "House"}
	require.NoError(t, env.users.Create(nil, doctor))
	ctx := service.WithActor(context.Background(), service.Actor{UserID: doctor.ID, Email: doctor.Email, Role: doctor.Role})

	report, err := u.Generate(ctx, &dto.GenerateReportRequest{PatientName: "<b>Ann</b>", ReportType: "diagnostic", AIModel: "gpt-4"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report.ID, "RPT"))
	assert.Equal(t, "N/A", report.PatientID)
	assert.Equal(t, entity.ReportStatusCompleted, report.Status)
	assert.Equal(t, "2024-01-17", report.Date)
	assert.Equal(t, "Dr. Gregory House", report.GeneratedBy)
	assert.Contains(t, report.Content, "<h2>Diagnostic Report</h2>")
	assert.Contains(t, report.Content, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.Contains(t, report.Content, "1/17/2024")

	reports, err := u.List(ctx, dto.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, report.ID, reports[0].ID, "newest first")

	download, err := u.Download(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "report-"+report.ID+".txt", download.Filename)
	assert.True(t, strings.HasPrefix(download.Body, "E-Doc AI Report\n===============\n\nPatient: <b>Ann</b>\nReport Type: diagnostic\nDate: 1/17/2024\nGenerated By: Dr. Gregory House\n\n"))
}

func TestReportUsecase_GenerateWithoutActor(t *testing.T) {
	u := newTestReportUsecase(newTestEnv())

	report, err := u.Generate(context.Background(), &dto.GenerateReportRequest{PatientName: "Ann", PatientID: "P9", ReportType: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, "E-Doc AI", report.GeneratedBy)
	assert.Equal(t, "P9", report.PatientID)
	assert.Contains(t, report.Content, "<h2>Medical Report</h2>")
}

func TestReportUsecase_PreviewDoesNotSave(t *testing.T) {
	ctx := context.Background()
	u := newTestReportUsecase(newTestEnv())

	preview, err := u.Preview(ctx, &dto.GenerateReportRequest{PatientName: "Ann", ReportType: "imaging"})
	require.NoError(t, err)
	assert.Contains(t, preview.Content, "Medical Imaging Report")

	_, err = u.Get(ctx, preview.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportUsecase_DownloadSeedReport(t *testing.T) {
	u := newTestReportUsecase(newTestEnv())

	download, err := u.Download(context.Background(), "2")
	require.NoError(t, err)
	assert.Contains(t, download.Body, "Date: 1/14/2024\nGenerated By: Dr. Michael Chen\n\n")
	assert.True(t, strings.HasSuffix(download.Body,
		"Summary: Normal brain MRI findings\nFindings: No significant abnormalities detected\nRecommendations: Continue current treatment plan"))

	_, err = u.Download(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportUsecase_Drafts(t *testing.T) {
	ctx := context.Background()
	u := newTestReportUsecase(newTestEnv())

	_, err := u.SaveDraft(ctx, &dto.GenerateReportRequest{PatientName: "  ", ReportType: "consultation"})
	assert.ErrorIs(t, err, ErrDraftFieldMissing)

	draft, err := u.SaveDraft(ctx, &dto.GenerateReportRequest{PatientName: "Ann", ReportType: "consultation"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(draft.ID, "DRAFT"))
	assert.Equal(t, entity.ReportStatusDraft, draft.Status)
	assert.Empty(t, draft.Content)

	drafts, err := u.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{draft.ID}, reportIDs(drafts))

	reports, err := u.List(ctx, dto.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, reports, 3, "drafts are kept apart from reports")
}

func TestReportUsecase_Annotate(t *testing.T) {
	ctx := service.WithActor(context.Background(), service.Actor{UserID: uuid.New(), Email: "reviewer@example.com"})
	u := newTestReportUsecase(newTestEnv())

	report, err := u.Annotate(ctx, "2", &dto.AnnotateReportRequest{Comment: "Looks fine"})
	require.NoError(t, err)
	require.Len(t, report.Annotations, 2)
	added := report.Annotations[1]
	assert.Equal(t, 2, added.ID)
	assert.Equal(t, entity.AnnotationReview, added.Type)
	assert.Equal(t, "reviewer@example.com", added.Doctor)
	assert.Equal(t, "2024-01-17", added.Date)

	_, err = u.Annotate(ctx, "missing", &dto.AnnotateReportRequest{Comment: "x"})
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportUsecase_ApproveOnlyPending(t *testing.T) {
	ctx := context.Background()
	u := newTestReportUsecase(newTestEnv())

	report, err := u.Approve(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusApproved, report.Status)
	assert.Empty(t, report.Annotations)

	_, err = u.Approve(ctx, "1")
	assert.ErrorIs(t, err, ErrReportNotPending)

	_, err = u.Reject(ctx, "2", &dto.RejectReportRequest{Reason: "no"})
	assert.ErrorIs(t, err, ErrReportNotPending)

	_, err = u.Approve(ctx, "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportUsecase_RejectAddsAnnotation(t *testing.T) {
	ctx := context.Background()
	u := newTestReportUsecase(newTestEnv())

	report, err := u.Reject(ctx, "1", &dto.RejectReportRequest{Reason: "Leads mislabeled"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusRejected, report.Status)
	require.Len(t, report.Annotations, 1)
	assert.Equal(t, entity.AnnotationRejection, report.Annotations[0].Type)
	assert.Equal(t, "Leads mislabeled", report.Annotations[0].Comment)

	stored, err := u.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusRejected, stored.Status)
}

func TestReportUsecase_RecentAndExport(t *testing.T) {
	ctx := context.Background()
	u := newTestReportUsecase(newTestEnv())

	var last string
	for i := 0; i < 3; i++ {
		r, err := u.Generate(ctx, &dto.GenerateReportRequest{PatientName: "Ann", ReportType: "treatment"})
		require.NoError(t, err)
		last = r.ID
	}

	recent, err := u.Recent(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
	assert.Equal(t, last, recent[0].ID)

	export, err := u.Export(ctx, dto.ReportFilter{Status: entity.ReportStatusCompleted})
	require.NoError(t, err)
	assert.Len(t, export.Reports, 3)
	assert.Equal(t, entity.ReportStatusCompleted, export.Filters.Status)
	assert.Equal(t, fixedNow, export.ExportDate)
}
