package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type NotificationUsecase struct {
	mock.Mock
}

func (m *NotificationUsecase) Notify(ctx context.Context, n *domain.Notification) error {
	ret := m.Called(ctx, n)
	return ret.Error(0)
}

func (m *NotificationUsecase) Fetch(ctx context.Context, userID int64, limit int64, cursor string) (domain.NotificationPage, error) {
	ret := m.Called(ctx, userID, limit, cursor)
	return ret.Get(0).(domain.NotificationPage), ret.Error(1)
}

func (m *NotificationUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *NotificationUsecase) MarkRead(ctx context.Context, userID int64, ids []int64) error {
	ret := m.Called(ctx, userID, ids)
	return ret.Error(0)
}

type ModerationUsecase struct {
	mock.Mock
}

func (m *ModerationUsecase) DetectForbiddenPhrase(ctx context.Context, text string) (*domain.ForbiddenTerm, error) {
	ret := m.Called(ctx, text)
	var res *domain.ForbiddenTerm
	if ret.Get(0) != nil {
		res = ret.Get(0).(*domain.ForbiddenTerm)
	}
	return res, ret.Error(1)
}

func (m *ModerationUsecase) AddTerm(ctx context.Context, phrase string, createdBy *int64) (*domain.ForbiddenTerm, error) {
	ret := m.Called(ctx, phrase, createdBy)
	var res *domain.ForbiddenTerm
	if ret.Get(0) != nil {
		res = ret.Get(0).(*domain.ForbiddenTerm)
	}
	return res, ret.Error(1)
}

func (m *ModerationUsecase) FetchTerms(ctx context.Context) ([]domain.ForbiddenTerm, error) {
	ret := m.Called(ctx)
	var res []domain.ForbiddenTerm
	if ret.Get(0) != nil {
		res = ret.Get(0).([]domain.ForbiddenTerm)
	}
	return res, ret.Error(1)
}

func (m *ModerationUsecase) RemoveTerm(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Create(ctx context.Context, in domain.CommentInput) (*domain.Comment, error) {
	ret := m.Called(ctx, in)
	var res *domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).(*domain.Comment)
	}
	return res, ret.Error(1)
}

func (m *CommentUsecase) FetchTree(ctx context.Context, articleID, viewerID int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, articleID, viewerID)
	var res []*domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).([]*domain.Comment)
	}
	return res, ret.Error(1)
}

type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) ToggleArticleLike(ctx context.Context, articleID, userID int64) (domain.LikeResult, error) {
	ret := m.Called(ctx, articleID, userID)
	return ret.Get(0).(domain.LikeResult), ret.Error(1)
}

func (m *LikeUsecase) ToggleCommentLike(ctx context.Context, commentID, userID int64) (domain.LikeResult, error) {
	ret := m.Called(ctx, commentID, userID)
	return ret.Get(0).(domain.LikeResult), ret.Error(1)
}

var _ domain.NotificationUsecase = (*NotificationUsecase)(nil)
var _ domain.ModerationUsecase = (*ModerationUsecase)(nil)
var _ domain.CommentUsecase = (*CommentUsecase)(nil)
var _ domain.LikeUsecase = (*LikeUsecase)(nil)
