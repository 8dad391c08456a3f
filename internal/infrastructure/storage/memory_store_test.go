package storage

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.Get(ctx, KeyPatients)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, KeyPatients, "[]"))
	v, found, err := s.Get(ctx, KeyPatients)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Delete(ctx, KeyPatients))
	_, found, _ = s.Get(ctx, KeyPatients)
	assert.False(t, found)
}

func TestMemoryStore_UpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", "old"))

	boom := errors.New("boom")
	err := s.Update(ctx, "k", func(string, bool) (string, error) { return "new", boom })
	assert.ErrorIs(t, err, boom)

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "old", v)
}

func TestMemoryStore_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, "counter", func(cur string, found bool) (string, error) {
				n := 0
				if found {
					n, _ = strconv.Atoi(cur)
				}
				return strconv.Itoa(n + 1), nil
			})
		}()
	}
	wg.Wait()

	v, _, _ := s.Get(ctx, "counter")
	assert.Equal(t, "50", v)
}

func TestNamespaced_IsolatesKeys(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	a := NewNamespaced(base, "user:a:")
	b := NewNamespaced(base, "user:b:")

	require.NoError(t, a.Set(ctx, KeyChatHistory, "a"))
	_, found, _ := b.Get(ctx, KeyChatHistory)
	assert.False(t, found)

	raw, found, _ := base.Get(ctx, "user:a:"+KeyChatHistory)
	assert.True(t, found)
	assert.Equal(t, "a", raw)
}
