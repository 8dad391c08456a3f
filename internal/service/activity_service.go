package service

import (
	"context"
	"time"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ActivityService feeds the dashboard's recent activity list.
type ActivityService interface {
	Record(ctx context.Context, action, entityName, entityID, message string) error
	Recent(ctx context.Context, limit int) ([]entity.Activity, error)
}

type activityService struct {
	log          *logrus.Logger
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewActivityService(log *logrus.Logger, activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{
		log:          log,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// Record adds an entry attributed to the actor in ctx, if any.
func (s *activityService) Record(ctx context.Context, action, entityName, entityID, message string) error {
	var actor string
	if a, ok := ActorFromContext(ctx); ok {
		actor = a.Email
	}

	activity := &entity.Activity{
		ID:         uuid.New().String(),
		Action:     action,
		Message:    message,
		EntityName: entityName,
		EntityID:   entityID,
		Actor:      actor,
		Timestamp:  s.now().UTC(),
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.log.Warnf("Failed to create activity: %+v", err)
		return err
	}

	return nil
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]entity.Activity, error) {
	activities, err := s.activityRepo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Warnf("Failed to load activities: %+v", err)
		return nil, err
	}
	return activities, nil
}
