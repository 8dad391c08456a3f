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

func newTestAppointmentUsecase(env *testEnv, now time.Time) *appointmentUsecase {
	u := NewAppointmentUsecase(env.log, repository.NewAppointmentRepository(env.store), env.activity).(*appointmentUsecase)
	u.now = clockAt(now)
	u.ids = newIDClock(clockAt(now))
	return u
}

func TestAppointmentUsecase_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	u := newTestAppointmentUsecase(newTestEnv(), time.Date(2024, time.January, 16, 8, 0, 0, 0, time.UTC))

	upcoming, err := u.List(ctx, listquery.Query{Status: "Upcoming"})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(3), upcoming[0].ID)

	pending, err := u.List(ctx, listquery.Query{Status: entity.AppointmentStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Michael Chen", pending[0].PatientName)
}

func TestAppointmentUsecase_CreateIsPending(t *testing.T) {
	ctx := context.Background()
	u := newTestAppointmentUsecase(newTestEnv(), fixedNow)

	created, err := u.Create(ctx, &dto.CreateAppointmentRequest{
		PatientName: "Ann Lee", PatientID: "P005", Doctor: "Dr. Smith",
		Date: "2024-01-20", Time: "11:00", Duration: 30, Type: "Consultation",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, created.Status)

	stats, err := u.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.AppointmentStatsResponse{Total: 4, Confirmed: 2, Pending: 2}, stats)
}

func TestAppointmentUsecase_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	u := newTestAppointmentUsecase(newTestEnv(), fixedNow)

	confirmed, err := u.Confirm(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusConfirmed, confirmed.Status)

	_, err = u.Confirm(ctx, 1)
	assert.ErrorIs(t, err, ErrAppointmentNotPending)

	cancelled, err := u.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)

	_, err = u.Cancel(ctx, 1)
	assert.ErrorIs(t, err, ErrAppointmentCancelled)
	_, err = u.Complete(ctx, 1)
	assert.ErrorIs(t, err, ErrAppointmentCancelled)

	completed, err := u.Complete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, completed.Status)

	_, err = u.Cancel(ctx, 3)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = u.Confirm(ctx, 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentUsecase_Calendar(t *testing.T) {
	ctx := context.Background()
	u := newTestAppointmentUsecase(newTestEnv(), fixedNow)

	_, err := u.Create(ctx, &dto.CreateAppointmentRequest{
		PatientName: "Early Bird", PatientID: "P006", Doctor: "Dr. Brown",
		Date: "2024-01-15", Time: "08:00", Type: "Checkup",
	})
	require.NoError(t, err)

	calendar, err := u.Calendar(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", calendar.Month)

	day := calendar.Events["2024-01-15"]
	require.Len(t, day, 3)
	assert.Equal(t, []string{"08:00", "09:00", "10:30"}, []string{day[0].Time, day[1].Time, day[2].Time})
	assert.Equal(t, "Dr. Smith - Consultation", day[1].Title)
	assert.Len(t, calendar.Events["2024-01-16"], 1)

	february, err := u.Calendar(ctx, "2024-02")
	require.NoError(t, err)
	assert.Empty(t, february.Events)

	_, err = u.Calendar(ctx, "January")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
