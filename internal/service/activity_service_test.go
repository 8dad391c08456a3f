package service

import (
	"context"
	"io"
	"testing"
	"time"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/infrastructure/storage"
	"edoc-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_RecordNewestFirstWithActor(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewActivityService(log, repository.NewActivityRepository(storage.NewMemoryStore(), 3)).(*activityService)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

	ctx := WithActor(context.Background(), Actor{UserID: uuid.New(), Email: "dr.smith@example.com", Role: entity.RoleDoctor})
	for _, msg := range []string{"first", "second", "third", "fourth"} {
		require.NoError(t, svc.Record(ctx, entity.ActivityPatientCreate, "patient", "1", msg))
	}
	require.NoError(t, svc.Record(context.Background(), entity.ActivityUpload, "upload", "", "anonymous"))

	recent, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "anonymous", recent[0].Message)
	assert.Empty(t, recent[0].Actor)
	assert.Equal(t, "fourth", recent[1].Message)
	assert.Equal(t, "dr.smith@example.com", recent[1].Actor)
	assert.Equal(t, "third", recent[2].Message)

	limited, err := svc.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
