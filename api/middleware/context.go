package middleware

import (
	"context"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

type contextKey string

const (
	ctxActorKind contextKey = "actor_kind"
	ctxActorID   contextKey = "actor_id"
	ctxActorName contextKey = "actor_name"
)

func ActorKindFromContext(ctx context.Context) enums.ActorKind {
	if ctx == nil {
		return enums.ActorKindAnonymous
	}
	if v, ok := ctx.Value(ctxActorKind).(enums.ActorKind); ok {
		return v
	}
	return enums.ActorKindAnonymous
}

func ActorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxActorID).(string); ok {
		return v
	}
	return ""
}

func ActorNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxActorName).(string); ok {
		return v
	}
	return ""
}

// WithActor injects the authenticated identity into the context.
func WithActor(ctx context.Context, kind enums.ActorKind, id, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxActorKind, kind)
	ctx = context.WithValue(ctx, ctxActorID, id)
	return context.WithValue(ctx, ctxActorName, name)
}
