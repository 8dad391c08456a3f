package service

import (
	"context"

	"github.com/google/uuid"
)

// Actor is the authenticated user a request acts on behalf of.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
