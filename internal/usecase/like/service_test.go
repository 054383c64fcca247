package like_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/domain/mocks"
	"github.com/adiwarta/warta/internal/usecase/like"
)

type likeMocks struct {
	articleRepo     *mocks.ArticleRepository
	commentRepo     *mocks.CommentRepository
	articleLikeRepo *mocks.ArticleLikeRepository
	commentLikeRepo *mocks.CommentLikeRepository
	notifier        *mocks.NotificationUsecase
}

func newLikeService() (*like.Service, *likeMocks) {
	m := &likeMocks{
		articleRepo:     new(mocks.ArticleRepository),
		commentRepo:     new(mocks.CommentRepository),
		articleLikeRepo: new(mocks.ArticleLikeRepository),
		commentLikeRepo: new(mocks.CommentLikeRepository),
		notifier:        new(mocks.NotificationUsecase),
	}
	svc := like.NewService(mocks.TxManager{}, m.articleRepo, m.commentRepo, m.articleLikeRepo, m.commentLikeRepo, m.notifier)
	return svc, m
}

func TestToggleArticleLikeOn(t *testing.T) {
	svc, m := newLikeService()
	m.articleRepo.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Status: domain.ArticlePublished, User: domain.User{ID: 1}}, nil).Once()
	m.articleLikeRepo.On("Exists", mock.Anything, int64(10), int64(2)).Return(false, nil).Once()
	m.articleLikeRepo.On("Store", mock.Anything, mock.MatchedBy(func(l *domain.ArticleLike) bool {
		return l.ArticleID == 10 && l.UserID == 2
	})).Return(nil).Once()
	m.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientID == 1 && n.ActorID == 2 && n.Type == domain.NotificationArticleLike
	})).Return(nil).Once()
	m.articleLikeRepo.On("CountByArticle", mock.Anything, int64(10)).Return(int64(7), nil).Once()

	res, err := svc.ToggleArticleLike(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, int64(7), res.Count)
	m.articleLikeRepo.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
}

func TestToggleArticleLikeOff(t *testing.T) {
	svc, m := newLikeService()
	m.articleRepo.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Status: domain.ArticlePublished, User: domain.User{ID: 1}}, nil).Once()
	m.articleLikeRepo.On("Exists", mock.Anything, int64(10), int64(2)).Return(true, nil).Once()
	m.articleLikeRepo.On("Delete", mock.Anything, int64(10), int64(2)).Return(nil).Once()
	m.articleLikeRepo.On("CountByArticle", mock.Anything, int64(10)).Return(int64(6), nil).Once()

	res, err := svc.ToggleArticleLike(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Equal(t, int64(6), res.Count)
	// Unliking is silent.
	m.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestToggleArticleLikeMissingArticle(t *testing.T) {
	svc, m := newLikeService()
	m.articleRepo.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{}, domain.ErrNotFound).Once()

	_, err := svc.ToggleArticleLike(context.Background(), 10, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestToggleArticleLikeSchemaMissing(t *testing.T) {
	svc, m := newLikeService()
	m.articleRepo.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Status: domain.ArticlePublished, User: domain.User{ID: 1}}, nil).Once()
	m.articleLikeRepo.On("Exists", mock.Anything, int64(10), int64(2)).
		Return(false, domain.ErrSchemaMissing).Once()

	_, err := svc.ToggleArticleLike(context.Background(), 10, 2)
	assert.ErrorIs(t, err, domain.ErrLikesUnavailable)
}

func TestToggleCommentLikeOn(t *testing.T) {
	svc, m := newLikeService()
	m.commentRepo.On("GetByID", mock.Anything, int64(50)).Return(&domain.Comment{
		ID: 50, ArticleID: 10, UserID: 3, Status: domain.CommentPublished,
	}, nil).Once()
	m.commentLikeRepo.On("Exists", mock.Anything, int64(50), int64(2)).Return(false, nil).Once()
	m.commentLikeRepo.On("Store", mock.Anything, mock.MatchedBy(func(l *domain.CommentLike) bool {
		return l.CommentID == 50 && l.UserID == 2
	})).Return(nil).Once()
	m.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientID == 3 && n.Type == domain.NotificationCommentLike &&
			n.CommentID != nil && *n.CommentID == 50
	})).Return(nil).Once()
	m.commentLikeRepo.On("CountByComment", mock.Anything, int64(50)).Return(int64(1), nil).Once()

	res, err := svc.ToggleCommentLike(context.Background(), 50, 2)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, int64(1), res.Count)
	m.notifier.AssertExpectations(t)
}

func TestToggleCommentLikeOffIsSilent(t *testing.T) {
	svc, m := newLikeService()
	m.commentRepo.On("GetByID", mock.Anything, int64(50)).Return(&domain.Comment{
		ID: 50, ArticleID: 10, UserID: 3, Status: domain.CommentPublished,
	}, nil).Once()
	m.commentLikeRepo.On("Exists", mock.Anything, int64(50), int64(2)).Return(true, nil).Once()
	m.commentLikeRepo.On("Delete", mock.Anything, int64(50), int64(2)).Return(nil).Once()
	m.commentLikeRepo.On("CountByComment", mock.Anything, int64(50)).Return(int64(0), nil).Once()

	res, err := svc.ToggleCommentLike(context.Background(), 50, 2)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Zero(t, res.Count)
	m.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestToggleCommentLikeUnpublishedComment(t *testing.T) {
	svc, m := newLikeService()
	m.commentRepo.On("GetByID", mock.Anything, int64(50)).Return(&domain.Comment{
		ID: 50, ArticleID: 10, UserID: 3, Status: "HIDDEN",
	}, nil).Once()

	_, err := svc.ToggleCommentLike(context.Background(), 50, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.commentLikeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleCommentLikeSchemaMissingOnStore(t *testing.T) {
	svc, m := newLikeService()
	m.commentRepo.On("GetByID", mock.Anything, int64(50)).Return(&domain.Comment{
		ID: 50, ArticleID: 10, UserID: 3, Status: domain.CommentPublished,
	}, nil).Once()
	m.commentLikeRepo.On("Exists", mock.Anything, int64(50), int64(2)).Return(false, nil).Once()
	m.commentLikeRepo.On("Store", mock.Anything, mock.Anything).
		Return(domain.ErrSchemaMissing).Once()

	_, err := svc.ToggleCommentLike(context.Background(), 50, 2)
	assert.ErrorIs(t, err, domain.ErrLikesUnavailable)
	m.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
