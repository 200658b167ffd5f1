package service

import "context"

type actorKey struct{}

// AnonymousActor is reported when a change was made without an organizer token.
const AnonymousActor = "anonymous"

// WithActor records who is changing the roster, for logging.
func WithActor(ctx context.Context, actor string) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor set by WithActor, or AnonymousActor.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok {
		return actor
	}
	return AnonymousActor
}
