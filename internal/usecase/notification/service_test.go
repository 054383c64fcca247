package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/domain/mocks"
	"github.com/adiwarta/warta/internal/repository"
	"github.com/adiwarta/warta/internal/usecase/notification"
)

func newNotificationService() (*notification.Service, *mocks.NotificationRepository, *mocks.UserRepository) {
	notificationRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	return notification.NewService(notificationRepo, userRepo), notificationRepo, userRepo
}

func TestNotifyStoresRow(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("Store", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientID == 1 && !n.CreatedAt.IsZero()
	})).Return(nil).Once()

	err := svc.Notify(context.Background(), &domain.Notification{
		RecipientID: 1, ActorID: 2, Type: domain.NotificationArticleComment,
	})
	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestNotifySkipsSelf(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()

	err := svc.Notify(context.Background(), &domain.Notification{
		RecipientID: 2, ActorID: 2, Type: domain.NotificationArticleLike,
	})
	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestNotifySkipsEmptyRecipient(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()

	err := svc.Notify(context.Background(), &domain.Notification{
		RecipientID: 0, ActorID: 2, Type: domain.NotificationCommentReply,
	})
	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestNotifySwallowsMissingStore(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("Store", mock.Anything, mock.Anything).
		Return(domain.ErrSchemaMissing).Once()

	err := svc.Notify(context.Background(), &domain.Notification{
		RecipientID: 1, ActorID: 2, Type: domain.NotificationArticleComment,
	})
	assert.NoError(t, err)
}

func TestFetchFullPageSetsNextCursor(t *testing.T) {
	svc, notificationRepo, userRepo := newNotificationService()

	// limit+1 rows back means another page exists.
	rows := make([]domain.Notification, 4)
	for i := range rows {
		rows[i] = domain.Notification{ID: int64(40 - i), RecipientID: 1, ActorID: 2, CreatedAt: time.Now()}
	}
	notificationRepo.On("FetchByRecipient", mock.Anything, int64(1), int64(4), int64(0)).
		Return(rows, nil).Once()
	notificationRepo.On("CountUnread", mock.Anything, int64(1)).Return(int64(9), nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2, Name: "actor"}, nil)

	page, err := svc.Fetch(context.Background(), 1, 3, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(9), page.UnreadCount)
	assert.Equal(t, repository.EncodeCursor(38), page.NextCursor)
	require.NotNil(t, page.Items[0].Actor)
	assert.Equal(t, "actor", page.Items[0].Actor.Name)
}

func TestFetchLastPageHasNoCursor(t *testing.T) {
	svc, notificationRepo, userRepo := newNotificationService()
	notificationRepo.On("FetchByRecipient", mock.Anything, int64(1), int64(21), int64(38)).
		Return([]domain.Notification{{ID: 37, RecipientID: 1, ActorID: 2}}, nil).Once()
	notificationRepo.On("CountUnread", mock.Anything, int64(1)).Return(int64(0), nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil)

	page, err := svc.Fetch(context.Background(), 1, 0, repository.EncodeCursor(38))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Empty(t, page.NextCursor)
}

func TestFetchClampsLimit(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("FetchByRecipient", mock.Anything, int64(1), int64(notification.MaxPageSize+1), int64(0)).
		Return([]domain.Notification{}, nil).Once()
	notificationRepo.On("CountUnread", mock.Anything, int64(1)).Return(int64(0), nil).Once()

	_, err := svc.Fetch(context.Background(), 1, 500, "")
	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestFetchBadCursor(t *testing.T) {
	svc, _, _ := newNotificationService()

	_, err := svc.Fetch(context.Background(), 1, 10, "not-a-cursor")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestFetchDegradesWithoutStore(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("FetchByRecipient", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(nil, domain.ErrSchemaMissing).Once()

	page, err := svc.Fetch(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.UnreadCount)
	assert.Empty(t, page.NextCursor)
}

func TestUnreadCountDegrades(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("CountUnread", mock.Anything, int64(1)).
		Return(int64(0), domain.ErrSchemaMissing).Once()

	count, err := svc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkRead(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("MarkRead", mock.Anything, int64(1), []int64{5, 6}, mock.Anything).
		Return(nil).Once()

	err := svc.MarkRead(context.Background(), 1, []int64{5, 6})
	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestMarkReadDegrades(t *testing.T) {
	svc, notificationRepo, _ := newNotificationService()
	notificationRepo.On("MarkRead", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(domain.ErrSchemaMissing).Once()

	err := svc.MarkRead(context.Background(), 1, nil)
	assert.NoError(t, err)
}
