// Package auth carries the authenticated actor on the request context and
// exposes the gate that every poster operation calls before doing any work.
package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("authentication required")

type Actor struct {
	UserID int64
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

// ContextGate admits requests whose context carries an actor placed there by
// the JWT middleware.
type ContextGate struct{}

func NewContextGate() *ContextGate {
	return &ContextGate{}
}

func (g *ContextGate) Check(ctx context.Context) (Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return Actor{}, ErrUnauthenticated
	}
	return actor, nil
}
