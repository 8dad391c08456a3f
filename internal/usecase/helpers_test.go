package usecase

import (
	"io"
	"sync"
	"time"

	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/infrastructure/storage"
	"edoc-portal/internal/repository"
	"edoc-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fixedNow is a Wednesday.
var fixedNow = time.Date(2024, time.January, 17, 10, 30, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type testEnv struct {
	store    storage.Store
	log      *logrus.Logger
	activity service.ActivityService
	users    *fakeUserRepository
}

func newTestEnv() *testEnv {
	store := storage.NewMemoryStore()
	log := quietLogger()
	return &testEnv{
		store:    store,
		log:      log,
		activity: service.NewActivityService(log, repository.NewActivityRepository(store, 20)),
		users:    newFakeUserRepository(),
	}
}

// fakeUserRepository keeps users in memory and ignores the gorm handle.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]entity.User)}
}

func (r *fakeUserRepository) Create(db *gorm.DB, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepository) Update(db *gorm.DB, user *entity.User) error {
	return r.Create(db, user)
}
