package repository

import (
	"context"
	"errors"

	"edoc-portal/internal/domain/entity"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordRepository is list CRUD over records persisted as one JSON array.
// FindByID returns nil without error when the id is unknown; Update and
// Delete return ErrRecordNotFound.
type RecordRepository[T any, K comparable] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id K) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id K, patch func(*T) error) (*T, error)
	Delete(ctx context.Context, id K) (*T, error)
	ReplaceAll(ctx context.Context, items []T) error
}

type PatientRepository = RecordRepository[entity.Patient, int64]

type AppointmentRepository = RecordRepository[entity.Appointment, int64]

type TeamMemberRepository = RecordRepository[entity.TeamMember, int64]

// ReportRepository keeps reports newest first.
type ReportRepository = RecordRepository[entity.Report, string]

type DraftRepository = RecordRepository[entity.Report, string]

type AIModelRepository = RecordRepository[entity.AIModel, string]
