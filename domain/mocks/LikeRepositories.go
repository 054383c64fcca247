package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type ArticleLikeRepository struct {
	mock.Mock
}

func (m *ArticleLikeRepository) Exists(ctx context.Context, articleID, userID int64) (bool, error) {
	ret := m.Called(ctx, articleID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *ArticleLikeRepository) Store(ctx context.Context, like *domain.ArticleLike) error {
	ret := m.Called(ctx, like)
	return ret.Error(0)
}

func (m *ArticleLikeRepository) Delete(ctx context.Context, articleID, userID int64) error {
	ret := m.Called(ctx, articleID, userID)
	return ret.Error(0)
}

func (m *ArticleLikeRepository) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	ret := m.Called(ctx, articleID)
	return ret.Get(0).(int64), ret.Error(1)
}

type CommentLikeRepository struct {
	mock.Mock
}

func (m *CommentLikeRepository) Exists(ctx context.Context, commentID, userID int64) (bool, error) {
	ret := m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *CommentLikeRepository) Store(ctx context.Context, like *domain.CommentLike) error {
	ret := m.Called(ctx, like)
	return ret.Error(0)
}

func (m *CommentLikeRepository) Delete(ctx context.Context, commentID, userID int64) error {
	ret := m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

func (m *CommentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	ret := m.Called(ctx, commentID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *CommentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	ret := m.Called(ctx, commentIDs)
	var res map[int64]int64
	if ret.Get(0) != nil {
		res = ret.Get(0).(map[int64]int64)
	}
	return res, ret.Error(1)
}

func (m *CommentLikeRepository) LikedByUser(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	ret := m.Called(ctx, userID, commentIDs)
	var res map[int64]bool
	if ret.Get(0) != nil {
		res = ret.Get(0).(map[int64]bool)
	}
	return res, ret.Error(1)
}
