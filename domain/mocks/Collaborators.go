package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

// TxManager is a passthrough fake: fn runs on the caller's context, which is
// what the real manager does minus the database transaction.
type TxManager struct{}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type RateLimiter struct {
	mock.Mock
}

func (m *RateLimiter) IsLimited(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	ret := m.Called(ctx, key, limit, window)
	return ret.Bool(0), ret.Error(1)
}

type SiteConfig struct {
	mock.Mock
}

func (m *SiteConfig) CommentsEnabled(ctx context.Context) bool {
	ret := m.Called(ctx)
	return ret.Bool(0)
}

type AuditLogger struct {
	mock.Mock
}

func (m *AuditLogger) Record(action, entity string, entityID int64, metadata map[string]any, userID *int64) {
	m.Called(action, entity, entityID, metadata, userID)
}

var _ domain.TxManager = TxManager{}
var _ domain.RateLimiter = (*RateLimiter)(nil)
var _ domain.SiteConfig = (*SiteConfig)(nil)
var _ domain.AuditLogger = (*AuditLogger)(nil)
