package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	ret := m.Called(ctx, n)
	return ret.Error(0)
}

func (m *NotificationRepository) FetchByRecipient(ctx context.Context, userID, limit, beforeID int64) ([]domain.Notification, error) {
	ret := m.Called(ctx, userID, limit, beforeID)
	var res []domain.Notification
	if ret.Get(0) != nil {
		res = ret.Get(0).([]domain.Notification)
	}
	return res, ret.Error(1)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, userID int64, ids []int64, at time.Time) error {
	ret := m.Called(ctx, userID, ids, at)
	return ret.Error(0)
}
