package repository

import (
	"context"
	"errors"
	"testing"

	"edoc-portal/internal/domain/entity"
	domainRepo "edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records writes so tests can assert a read did not re-seed.
type countingStore struct {
	*storage.MemoryStore
	writes int
}

func (s *countingStore) Set(ctx context.Context, key, value string) error {
	s.writes++
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *countingStore) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	s.writes++
	return s.MemoryStore.Update(ctx, key, fn)
}

func patientCollection(store storage.Store) *Collection[entity.Patient, int64] {
	return NewCollection(store, storage.KeyPatients, DefaultPatients,
		func(p entity.Patient) int64 { return p.ID })
}

func TestCollection_LoadSeedsOnceAndPersists(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: storage.NewMemoryStore()}
	c := patientCollection(store)

	first, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultPatients(), first)
	assert.Equal(t, 1, store.writes)

	_, found, _ := store.Get(ctx, storage.KeyPatients)
	assert.True(t, found)

	second, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.writes, "second load must not re-seed")
}

func TestCollection_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	c := patientCollection(store)

	items, err := c.Load(ctx)
	require.NoError(t, err)
	before, _, _ := store.Get(ctx, storage.KeyPatients)

	require.NoError(t, c.Save(ctx, items))
	after, _, _ := store.Get(ctx, storage.KeyPatients)
	assert.JSONEq(t, before, after)

	reloaded, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, reloaded)
}

func TestCollection_CorruptedDataIsReportedNotOverwritten(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyPatients, "{not json"))
	c := patientCollection(store)

	_, err := c.Load(ctx)
	assert.True(t, errors.Is(err, storage.ErrCorrupted))

	err = c.Add(ctx, entity.Patient{ID: 9})
	assert.True(t, errors.Is(err, storage.ErrCorrupted))

	raw, _, _ := store.Get(ctx, storage.KeyPatients)
	assert.Equal(t, "{not json", raw)
}

func TestCollection_AddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	c := patientCollection(storage.NewMemoryStore())

	require.NoError(t, c.Add(ctx, entity.Patient{ID: 5, Name: "Ana Lima", Status: entity.PatientStatusActive}))
	items, _ := c.Load(ctx)
	require.Len(t, items, 5)
	assert.Equal(t, int64(5), items[4].ID)

	updated, err := c.Update(ctx, 5, func(p *entity.Patient) error {
		p.Status = entity.PatientStatusInactive
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PatientStatusInactive, updated.Status)
	assert.Equal(t, "Ana Lima", updated.Name)

	removed, err := c.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", removed.Name)

	items, _ = c.Load(ctx)
	assert.Len(t, items, 4)

	_, err = c.Remove(ctx, 1)
	assert.ErrorIs(t, err, domainRepo.ErrRecordNotFound)
	_, err = c.Update(ctx, 42, func(*entity.Patient) error { return nil })
	assert.ErrorIs(t, err, domainRepo.ErrRecordNotFound)
}

func TestCollection_PatchErrorLeavesDataUntouched(t *testing.T) {
	ctx := context.Background()
	c := patientCollection(storage.NewMemoryStore())
	boom := errors.New("boom")

	_, err := c.Update(ctx, 1, func(p *entity.Patient) error {
		p.Name = "changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := c.Find(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", p.Name)
}

func TestCollection_CapKeepsNewest(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	appendOnly := NewCollection[entity.ChatEntry, string](store, "history", nil,
		func(e entity.ChatEntry) string { return e.SessionID }).WithCap(3)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, appendOnly.Add(ctx, entity.ChatEntry{SessionID: id}))
	}
	items, _ := appendOnly.Load(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].SessionID)
	assert.Equal(t, "e", items[2].SessionID)

	newestFirst := NewCollection[entity.ChatEntry, string](store, "feed", nil,
		func(e entity.ChatEntry) string { return e.SessionID }).WithCap(3)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, newestFirst.Prepend(ctx, entity.ChatEntry{SessionID: id}))
	}
	items, _ = newestFirst.Load(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, "e", items[0].SessionID)
	assert.Equal(t, "c", items[2].SessionID)
}

func TestCollection_UnseededLoadDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: storage.NewMemoryStore()}
	c := NewCollection[entity.Report, string](store, storage.KeyDrafts, nil, reportID)

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, store.writes)
}

func TestDocument_SeedsAnalytics(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository(storage.NewMemoryStore())

	data, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 156, data.Appointments.Total)
	assert.True(t, data.Revenue.Total.Equal(DefaultAnalytics().Revenue.Total))
	assert.Equal(t, "30.4", data.Revenue.Services[1].Percentage.String())

	data.Performance.WaitTime = 20
	require.NoError(t, repo.Save(ctx, data))
	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, again.Performance.WaitTime)
}

func TestChatHistoryRepository_PerOwnerAndSessionDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewChatHistoryRepository(storage.NewMemoryStore(), 50)

	require.NoError(t, repo.Append(ctx, "u1", &entity.ChatEntry{SessionID: "s1", UserMessage: "hi"}))
	require.NoError(t, repo.Append(ctx, "u1", &entity.ChatEntry{SessionID: "s2", UserMessage: "yo"}))
	require.NoError(t, repo.Append(ctx, "u2", &entity.ChatEntry{SessionID: "s1", UserMessage: "other"}))

	n, err := repo.DeleteSession(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mine, _ := repo.FindAll(ctx, "u1")
	require.Len(t, mine, 1)
	assert.Equal(t, "s2", mine[0].SessionID)

	theirs, _ := repo.FindAll(ctx, "u2")
	assert.Len(t, theirs, 1)
}

func TestReportRepository_NewestFirstCapped(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(storage.NewMemoryStore(), 4)

	require.NoError(t, repo.Create(ctx, &entity.Report{ID: "RPT1"}))
	require.NoError(t, repo.Create(ctx, &entity.Report{ID: "RPT2"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "RPT2", all[0].ID)
	assert.Equal(t, "RPT1", all[1].ID)
	assert.Equal(t, "1", all[2].ID)

	missing, err := repo.FindByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAnalyticsRepository_StoresAmountsAsNumbers(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewAnalyticsRepository(store)

	_, err := repo.Get(ctx)
	require.NoError(t, err)

	raw, found, err := store.Get(ctx, storage.KeyAnalytics)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, raw, `"total":125000`)
	assert.Contains(t, raw, `"monthly":[8500,9200,`)
	assert.Contains(t, raw, `"percentage":30.4`)
	assert.NotContains(t, raw, `"125000"`)

	data, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, data.Revenue.Total.Equal(decimal.NewFromInt(125000)))
}

func TestAnalyticsRepository_ReadsQuotedAmounts(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyAnalytics, `{"revenue":{"total":"9800.50","monthly":["100"]}}`))

	data, err := NewAnalyticsRepository(store).Get(ctx)
	require.NoError(t, err)
	assert.True(t, data.Revenue.Total.Equal(decimal.RequireFromString("9800.50")))
	require.Len(t, data.Revenue.Monthly, 1)
}
