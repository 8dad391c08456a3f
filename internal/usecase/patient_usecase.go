package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"
	"edoc-portal/pkg/listquery"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidImport   = errors.New("invalid file format")
)

type PatientUsecase interface {
	List(ctx context.Context, q listquery.Query) ([]dto.PatientResponse, error)
	Get(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*dto.PatientStatsResponse, error)
	Export(ctx context.Context) (*dto.PatientExport, error)
	Import(ctx context.Context, req *dto.PatientImportRequest) (int, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	activity    service.ActivityService
	ids         *idClock
	now         func() time.Time
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, activity service.ActivityService) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		activity:    activity,
		ids:         newIDClock(time.Now),
		now:         time.Now,
	}
}

func (u *patientUsecase) List(ctx context.Context, q listquery.Query) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients: %+v", err)
		return nil, err
	}

	filtered := listquery.Apply(patients, q,
		func(p entity.Patient) string { return p.Status },
		entity.Patient.SearchFields)
	return converter.PatientsToResponse(filtered), nil
}

func (u *patientUsecase) Get(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := converter.CreatePatientRequestToEntity(req)
	patient.ID = u.ids.Next()

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityPatientCreate, "patient", strconv.FormatInt(patient.ID, 10),
		"New patient added: "+patient.Name)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.Update(ctx, id, func(p *entity.Patient) error {
		converter.ApplyPatientUpdate(p, req)
		return nil
	})
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityPatientUpdate, "patient", strconv.FormatInt(id, 10),
		"Patient record updated: "+patient.Name)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	patient, err := u.patientRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrPatientNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.activity.Record(ctx, entity.ActivityPatientDelete, "patient", strconv.FormatInt(id, 10),
		"Patient removed: "+patient.Name)
	return nil
}

func (u *patientUsecase) Stats(ctx context.Context) (*dto.PatientStatsResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients: %+v", err)
		return nil, err
	}

	now := u.now()
	stats := &dto.PatientStatsResponse{Total: len(patients)}
	for _, p := range patients {
		switch p.Status {
		case entity.PatientStatusActive:
			stats.Active++
		case entity.PatientStatusInactive:
			stats.Inactive++
		}
		if visit, err := time.Parse("2006-01-02", p.LastVisit); err == nil &&
			visit.Year() == now.Year() && visit.Month() == now.Month() {
			stats.NewThisMonth++
		}
	}
	return stats, nil
}

func (u *patientUsecase) Export(ctx context.Context) (*dto.PatientExport, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients: %+v", err)
		return nil, err
	}
	return &dto.PatientExport{
		ExportDate: u.now().UTC(),
		Patients:   converter.PatientsToResponse(patients),
	}, nil
}

// Import replaces the whole patient list.
func (u *patientUsecase) Import(ctx context.Context, req *dto.PatientImportRequest) (int, error) {
	if req == nil || req.Patients == nil {
		return 0, ErrInvalidImport
	}

	patients := converter.PatientResponsesToEntities(*req.Patients)
	if err := u.patientRepo.ReplaceAll(ctx, patients); err != nil {
		u.log.Warnf("Failed to import patients: %+v", err)
		return 0, err
	}

	u.activity.Record(ctx, entity.ActivityPatientImport, "patient", "",
		"Imported "+strconv.Itoa(len(patients))+" patients")
	return len(patients), nil
}
