package domain

import (
	"context"
	"time"
)

// TxManager runs a function inside one atomic transaction. The transaction
// scope travels in the context so repository calls made by fn join it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RateLimiter is a fixed-window limiter keyed by string identifiers.
type RateLimiter interface {
	// IsLimited reports whether key has exceeded limit events within window.
	// The call itself counts as one event.
	IsLimited(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}

// SiteConfig exposes site-wide switches owned by the configuration service.
type SiteConfig interface {
	// CommentsEnabled reports whether commenting is globally enabled.
	CommentsEnabled(ctx context.Context) bool
}

// AuditEvent is one structured audit record.
type AuditEvent struct {
	EventID   string
	Action    string
	Entity    string
	EntityID  int64
	Metadata  map[string]any
	UserID    *int64
	CreatedAt time.Time
}

// AuditLogger records events fire-and-forget: failures never propagate to
// the triggering operation.
type AuditLogger interface {
	Record(action, entity string, entityID int64, metadata map[string]any, userID *int64)
}
