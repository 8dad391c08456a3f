package objectstore

import (
	"bytes"
	"context"
	"io"
	"sync"

	"edoc-portal/internal/domain/repository"
)

// MemoryStorage keeps objects in process. It backs uploads when no MinIO
// endpoint is configured and in tests.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string]Object
}

type Object struct {
	Data        []byte
	ContentType string
}

var _ repository.ObjectStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]Object)}
}

func (s *MemoryStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = Object{Data: buf.Bytes(), ContentType: contentType}
	return nil
}

func (s *MemoryStorage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStorage) Get(key string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj, ok
}

func (s *MemoryStorage) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}
