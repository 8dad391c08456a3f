// Package storage provides the key/value record store behind the portal's
// lists. Every key holds one JSON document, written whole on each change.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrCorrupted is returned when a stored value cannot be decoded.
	ErrCorrupted = errors.New("stored data is corrupted")
	// ErrConflict is returned when an atomic update lost every retry.
	ErrConflict = errors.New("concurrent update conflict")
)

// Fixed record keys.
const (
	KeyAppointments     = "appointments"
	KeyPatients         = "patients"
	KeyTeamMembers      = "teamMembers"
	KeyReports          = "edoc_reports"
	KeyDrafts           = "edoc_drafts"
	KeyChatHistory      = "edoc_chat_history"
	KeyRecentActivities = "edoc_recent_activities"
	KeyAnalytics        = "analyticsData"
	KeyAIModels         = "aiModels"
)

// UpdateFunc receives the current value (found=false when the key is absent)
// and returns the value to store.
type UpdateFunc func(current string, found bool) (string, error)

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Update runs fn and stores its result atomically with respect to other
	// Update calls on the same key. An error from fn aborts the write.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Namespaced scopes every key of the wrapped store under prefix.
type Namespaced struct {
	inner  Store
	prefix string
}

func NewNamespaced(inner Store, prefix string) *Namespaced {
	return &Namespaced{inner: inner, prefix: prefix}
}

func (n *Namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *Namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *Namespaced) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return n.inner.Update(ctx, n.prefix+key, fn)
}
