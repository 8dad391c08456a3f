package repository

import (
	"context"
	"encoding/json"

	domainRepo "edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/storage"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and ratings are stored and served as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection is a JSON array of records stored whole under a single key.
// Reads of an absent key seed it with the defaults; every write rewrites the
// full array inside a single store update.
type Collection[T any, K comparable] struct {
	store    storage.Store
	key      string
	seed     func() []T
	idOf     func(T) K
	capacity int
}

// NewCollection binds a collection to key. seed may be nil for lists that
// start empty.
func NewCollection[T any, K comparable](store storage.Store, key string, seed func() []T, idOf func(T) K) *Collection[T, K] {
	return &Collection[T, K]{
		store: store,
		key:   key,
		seed:  seed,
		idOf:  idOf,
	}
}

// WithCap bounds the collection length; 0 means unbounded.
func (c *Collection[T, K]) WithCap(n int) *Collection[T, K] {
	c.capacity = n
	return c
}

func (c *Collection[T, K]) Key() string {
	return c.key
}

func (c *Collection[T, K]) defaults() []T {
	if c.seed == nil {
		return []T{}
	}
	return c.seed()
}

func (c *Collection[T, K]) decode(raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(storage.ErrCorrupted, "key %q: %v", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal records")
	}
	return string(data), nil
}

// Load returns the stored array, persisting the defaults first if the key
// is absent. A corrupted value is reported, never overwritten.
func (c *Collection[T, K]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if found {
		return c.decode(raw)
	}
	if c.seed == nil {
		return []T{}, nil
	}

	err = c.store.Update(ctx, c.key, func(current string, found bool) (string, error) {
		if found {
			raw = current
			return current, nil
		}
		raw, err = encode(c.seed())
		return raw, err
	})
	if err != nil {
		return nil, err
	}
	return c.decode(raw)
}

// Save replaces the stored array.
func (c *Collection[T, K]) Save(ctx context.Context, items []T) error {
	raw, err := encode(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, raw)
}

// Mutate loads, applies fn and saves as one atomic step.
func (c *Collection[T, K]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	return c.store.Update(ctx, c.key, func(current string, found bool) (string, error) {
		items := c.defaults()
		if found {
			var err error
			if items, err = c.decode(current); err != nil {
				return "", err
			}
		}
		items, err := fn(items)
		if err != nil {
			return "", err
		}
		return encode(items)
	})
}

// Add appends item, keeping the most recent entries when capped.
func (c *Collection[T, K]) Add(ctx context.Context, item T) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		items = append(items, item)
		if c.capacity > 0 && len(items) > c.capacity {
			items = items[len(items)-c.capacity:]
		}
		return items, nil
	})
}

// Prepend inserts item at the front (newest first), truncating the tail
// when capped.
func (c *Collection[T, K]) Prepend(ctx context.Context, item T) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		items = append([]T{item}, items...)
		if c.capacity > 0 && len(items) > c.capacity {
			items = items[:c.capacity]
		}
		return items, nil
	})
}

func (c *Collection[T, K]) Find(ctx context.Context, id K) (T, error) {
	var zero T
	items, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if c.idOf(item) == id {
			return item, nil
		}
	}
	return zero, domainRepo.ErrRecordNotFound
}

// Update applies patch to the record with id and returns the stored result.
// An error from patch leaves the collection untouched.
func (c *Collection[T, K]) Update(ctx context.Context, id K, patch func(*T) error) (T, error) {
	var updated T
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.idOf(items[i]) != id {
				continue
			}
			if err := patch(&items[i]); err != nil {
				return nil, err
			}
			updated = items[i]
			return items, nil
		}
		return nil, domainRepo.ErrRecordNotFound
	})
	return updated, err
}

// Remove deletes the record with id and returns it.
func (c *Collection[T, K]) Remove(ctx context.Context, id K) (T, error) {
	var removed T
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.idOf(items[i]) == id {
				removed = items[i]
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domainRepo.ErrRecordNotFound
	})
	return removed, err
}

// RemoveWhere deletes every record matching pred and reports how many went.
func (c *Collection[T, K]) RemoveWhere(ctx context.Context, pred func(T) bool) (int, error) {
	removed := 0
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		kept := items[:0]
		for _, item := range items {
			if pred(item) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		return kept, nil
	})
	return removed, err
}

// Document is a single JSON object stored under one key, seeded on first read.
type Document[T any] struct {
	store storage.Store
	key   string
	seed  func() T
}

func NewDocument[T any](store storage.Store, key string, seed func() T) *Document[T] {
	return &Document[T]{store: store, key: key, seed: seed}
}

func (d *Document[T]) Load(ctx context.Context) (T, error) {
	var doc T
	raw, found, err := d.store.Get(ctx, d.key)
	if err != nil {
		return doc, err
	}
	if !found {
		err = d.store.Update(ctx, d.key, func(current string, found bool) (string, error) {
			if found {
				raw = current
				return current, nil
			}
			data, err := json.Marshal(d.seed())
			if err != nil {
				return "", errors.Wrap(err, "failed to marshal document")
			}
			raw = string(data)
			return raw, nil
		})
		if err != nil {
			return doc, err
		}
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return doc, errors.Wrapf(storage.ErrCorrupted, "key %q: %v", d.key, err)
	}
	return doc, nil
}

func (d *Document[T]) Save(ctx context.Context, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal document")
	}
	return d.store.Set(ctx, d.key, string(data))
}
