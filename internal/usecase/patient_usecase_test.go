package usecase

import (
	"context"
	"testing"
	"time"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/repository"
	"edoc-portal/pkg/listquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatientUsecase(env *testEnv) *patientUsecase {
	u := NewPatientUsecase(env.log, repository.NewPatientRepository(env.store), env.activity).(*patientUsecase)
	u.now = clockAt(fixedNow)
	u.ids = newIDClock(clockAt(fixedNow))
	return u
}

func TestPatientUsecase_ListFilters(t *testing.T) {
	ctx := context.Background()
	u := newTestPatientUsecase(newTestEnv())

	all, err := u.List(ctx, listquery.Query{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	inactive, err := u.List(ctx, listquery.Query{Status: "inactive"})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Emily Davis", inactive[0].Name)

	found, err := u.List(ctx, listquery.Query{Text: "diabetes"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Michael Chen", found[0].Name)
}

func TestPatientUsecase_CRUD(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u := newTestPatientUsecase(env)

	created, err := u.Create(ctx, &dto.CreatePatientRequest{Name: "Ann Lee", PatientID: "P005", Age: 30, Status: entity.PatientStatusActive})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixMilli(), created.ID)

	got, err := u.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", got.Name)

	diagnosis := "Migraine"
	updated, err := u.Update(ctx, created.ID, &dto.UpdatePatientRequest{Diagnosis: &diagnosis})
	require.NoError(t, err)
	assert.Equal(t, "Migraine", updated.Diagnosis)
	assert.Equal(t, "Ann Lee", updated.Name, "unset fields are kept")

	require.NoError(t, u.Delete(ctx, created.ID))
	_, err = u.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.ErrorIs(t, u.Delete(ctx, created.ID), ErrPatientNotFound)
	_, err = u.Update(ctx, created.ID, &dto.UpdatePatientRequest{})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	activities, err := env.activity.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "Patient removed: Ann Lee", activities[0].Message)
}

func TestPatientUsecase_Stats(t *testing.T) {
	u := newTestPatientUsecase(newTestEnv())

	stats, err := u.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.PatientStatsResponse{Total: 4, Active: 3, Inactive: 1, NewThisMonth: 4}, stats)

	u.now = clockAt(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	stats, err = u.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.NewThisMonth)
}

func TestPatientUsecase_ExportImport(t *testing.T) {
	ctx := context.Background()
	u := newTestPatientUsecase(newTestEnv())

	export, err := u.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, export.Patients, 4)
	assert.Equal(t, fixedNow, export.ExportDate)

	_, err = u.Import(ctx, &dto.PatientImportRequest{})
	assert.ErrorIs(t, err, ErrInvalidImport)

	imported := export.Patients[:1]
	n, err := u.Import(ctx, &dto.PatientImportRequest{Patients: &imported})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := u.List(ctx, listquery.Query{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
