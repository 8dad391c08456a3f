package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"
	"edoc-portal/pkg/listquery"

	"github.com/sirupsen/logrus"
)

// FilterUpcoming selects appointments from today on that are not cancelled.
const FilterUpcoming = "upcoming"

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotPending   = errors.New("only pending appointments can be confirmed")
	ErrAppointmentCancelled    = errors.New("appointment is already cancelled")
	ErrInvalidStatusTransition = errors.New("appointment status cannot change this way")
	ErrInvalidMonth            = errors.New("invalid month, use YYYY-MM")
)

type AppointmentUsecase interface {
	List(ctx context.Context, q listquery.Query) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Stats(ctx context.Context) (*dto.AppointmentStatsResponse, error)
	Export(ctx context.Context) (*dto.AppointmentExport, error)
	Calendar(ctx context.Context, month string) (*dto.CalendarResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	activity        service.ActivityService
	ids             *idClock
	now             func() time.Time
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository, activity service.ActivityService) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		activity:        activity,
		ids:             newIDClock(time.Now),
		now:             time.Now,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, q listquery.Query) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	if strings.EqualFold(q.Status, FilterUpcoming) {
		appointments = u.upcoming(appointments)
		q.Status = listquery.StatusAll
	}

	filtered := listquery.Apply(appointments, q,
		func(a entity.Appointment) string { return a.Status },
		entity.Appointment.SearchFields)
	return converter.AppointmentsToResponse(filtered), nil
}

func (u *appointmentUsecase) upcoming(appointments []entity.Appointment) []entity.Appointment {
	today := u.now().Format("2006-01-02")
	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		// ISO dates compare correctly as strings.
		if a.Date >= today && a.Status != entity.AppointmentStatusCancelled {
			out = append(out, a)
		}
	}
	return out
}

func (u *appointmentUsecase) Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := converter.CreateAppointmentRequestToEntity(req)
	appointment.ID = u.ids.Next()

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityAppointmentCreate, "appointment", strconv.FormatInt(appointment.ID, 10),
		"Appointment scheduled for "+appointment.PatientName+" with "+appointment.Doctor)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.Update(ctx, id, func(a *entity.Appointment) error {
		converter.ApplyAppointmentUpdate(a, req)
		return nil
	})
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityAppointmentUpdate, "appointment", strconv.FormatInt(id, 10),
		"Appointment updated for "+appointment.PatientName)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusConfirmed, func(current string) error {
		if current != entity.AppointmentStatusPending {
			return ErrAppointmentNotPending
		}
		return nil
	})
}

func (u *appointmentUsecase) Cancel(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled, func(current string) error {
		switch current {
		case entity.AppointmentStatusCancelled:
			return ErrAppointmentCancelled
		case entity.AppointmentStatusCompleted:
			return ErrInvalidStatusTransition
		}
		return nil
	})
}

func (u *appointmentUsecase) Complete(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted, func(current string) error {
		switch current {
		case entity.AppointmentStatusCancelled:
			return ErrAppointmentCancelled
		case entity.AppointmentStatusCompleted:
			return ErrInvalidStatusTransition
		}
		return nil
	})
}

func (u *appointmentUsecase) transition(ctx context.Context, id int64, to string, allowed func(current string) error) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.Update(ctx, id, func(a *entity.Appointment) error {
		if err := allowed(a.Status); err != nil {
			return err
		}
		a.Status = to
		return nil
	})
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, ErrAppointmentNotFound
	case errors.Is(err, ErrAppointmentNotPending), errors.Is(err, ErrAppointmentCancelled), errors.Is(err, ErrInvalidStatusTransition):
		return nil, err
	case err != nil:
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityAppointmentStatus, "appointment", strconv.FormatInt(id, 10),
		"Appointment for "+appointment.PatientName+" marked "+strings.ToLower(to))
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Export(ctx context.Context) (*dto.AppointmentExport, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentExport{
		ExportDate:   u.now().UTC(),
		Appointments: converter.AppointmentsToResponse(appointments),
	}, nil
}

func (u *appointmentUsecase) Stats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	stats := &dto.AppointmentStatsResponse{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case entity.AppointmentStatusConfirmed:
			stats.Confirmed++
		case entity.AppointmentStatusPending:
			stats.Pending++
		case entity.AppointmentStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// Calendar groups the month's appointments by date, ordered by time.
// An empty month means the current one.
func (u *appointmentUsecase) Calendar(ctx context.Context, month string) (*dto.CalendarResponse, error) {
	if month == "" {
		month = u.now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, ErrInvalidMonth
	}

	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	events := make(map[string][]entity.CalendarEvent)
	for _, a := range appointments {
		if !strings.HasPrefix(a.Date, month+"-") {
			continue
		}
		events[a.Date] = append(events[a.Date], entity.CalendarEvent{
			Date:  a.Date,
			Type:  "appointment",
			Title: a.Doctor + " - " + a.Type,
			Time:  a.Time,
		})
	}
	for date := range events {
		day := events[date]
		sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })
	}

	return &dto.CalendarResponse{Month: month, Events: events}, nil
}
