package usecase

import (
	"context"
	"time"

	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const recentActivityLimit = 10

type DashboardUsecase interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	teamRepo        repository.TeamMemberRepository
	reportRepo      repository.ReportRepository
	activity        service.ActivityService
	now             func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	teamRepo repository.TeamMemberRepository,
	reportRepo repository.ReportRepository,
	activity service.ActivityService,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		teamRepo:        teamRepo,
		reportRepo:      reportRepo,
		activity:        activity,
		now:             time.Now,
	}
}

// Overview loads every collection concurrently and summarizes them.
func (u *dashboardUsecase) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		patients     []entity.Patient
		appointments []entity.Appointment
		team         []entity.TeamMember
		reports      []entity.Report
		activities   []entity.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		patients, err = u.patientRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = u.appointmentRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		team, err = u.teamRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		reports, err = u.reportRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		activities, err = u.activity.Recent(gctx, recentActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard data: %+v", err)
		return nil, err
	}

	stats := dto.DashboardStats{
		TotalPatients:     len(patients),
		TotalAppointments: len(appointments),
		TeamMembers:       len(team),
		TotalReports:      len(reports),
	}
	for _, p := range patients {
		if p.Status == entity.PatientStatusActive {
			stats.ActivePatients++
		}
	}
	for _, r := range reports {
		if r.Status == entity.ReportStatusPending {
			stats.PendingReports++
		}
	}

	today := u.now().Format("2006-01-02")
	todays := []entity.Appointment{}
	for _, a := range appointments {
		if a.Status == entity.AppointmentStatusPending {
			stats.PendingAppointments++
		}
		if a.Date == today {
			todays = append(todays, a)
		}
	}

	return &dto.DashboardResponse{
		Stats:             stats,
		RecentActivities:  converter.ActivitiesToResponse(activities),
		TodayAppointments: converter.AppointmentsToResponse(todays),
	}, nil
}
