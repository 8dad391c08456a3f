package repository

import (
	"context"
	"errors"

	"edoc-portal/internal/domain/entity"
	domainRepo "edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/storage"
)

type recordRepository[T any, K comparable] struct {
	collection *Collection[T, K]
	prepend    bool
}

func (r *recordRepository[T, K]) FindAll(ctx context.Context) ([]T, error) {
	return r.collection.Load(ctx)
}

func (r *recordRepository[T, K]) FindByID(ctx context.Context, id K) (*T, error) {
	item, err := r.collection.Find(ctx, id)
	if errors.Is(err, domainRepo.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *recordRepository[T, K]) Create(ctx context.Context, item *T) error {
	if r.prepend {
		return r.collection.Prepend(ctx, *item)
	}
	return r.collection.Add(ctx, *item)
}

func (r *recordRepository[T, K]) Update(ctx context.Context, id K, patch func(*T) error) (*T, error) {
	item, err := r.collection.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *recordRepository[T, K]) Delete(ctx context.Context, id K) (*T, error) {
	item, err := r.collection.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *recordRepository[T, K]) ReplaceAll(ctx context.Context, items []T) error {
	return r.collection.Save(ctx, items)
}

func NewPatientRepository(store storage.Store) domainRepo.PatientRepository {
	return &recordRepository[entity.Patient, int64]{
		collection: NewCollection(store, storage.KeyPatients, DefaultPatients,
			func(p entity.Patient) int64 { return p.ID }),
	}
}

func NewAppointmentRepository(store storage.Store) domainRepo.AppointmentRepository {
	return &recordRepository[entity.Appointment, int64]{
		collection: NewCollection(store, storage.KeyAppointments, DefaultAppointments,
			func(a entity.Appointment) int64 { return a.ID }),
	}
}

func NewTeamMemberRepository(store storage.Store) domainRepo.TeamMemberRepository {
	return &recordRepository[entity.TeamMember, int64]{
		collection: NewCollection(store, storage.KeyTeamMembers, DefaultTeamMembers,
			func(m entity.TeamMember) int64 { return m.ID }),
	}
}

// NewReportRepository keeps at most capacity reports, dropping the oldest.
func NewReportRepository(store storage.Store, capacity int) domainRepo.ReportRepository {
	return &recordRepository[entity.Report, string]{
		collection: NewCollection(store, storage.KeyReports, DefaultReports, reportID).WithCap(capacity),
		prepend:    true,
	}
}

func NewDraftRepository(store storage.Store) domainRepo.DraftRepository {
	return &recordRepository[entity.Report, string]{
		collection: NewCollection[entity.Report, string](store, storage.KeyDrafts, nil, reportID),
		prepend:    true,
	}
}

func NewAIModelRepository(store storage.Store) domainRepo.AIModelRepository {
	return &recordRepository[entity.AIModel, string]{
		collection: NewCollection(store, storage.KeyAIModels, DefaultAIModels,
			func(m entity.AIModel) string { return m.ID }),
	}
}

func reportID(r entity.Report) string { return r.ID }
