package like

import (
	"context"
	"errors"
	"time"

	"github.com/adiwarta/warta/domain"
)

type Service struct {
	txm             domain.TxManager
	articleRepo     domain.ArticleRepository
	commentRepo     domain.CommentRepository
	articleLikeRepo domain.ArticleLikeRepository
	commentLikeRepo domain.CommentLikeRepository
	notifier        domain.NotificationUsecase
}

var _ domain.LikeUsecase = (*Service)(nil)

// NewService will create a new like toggle service object
func NewService(
	txm domain.TxManager,
	articleRepo domain.ArticleRepository,
	commentRepo domain.CommentRepository,
	articleLikeRepo domain.ArticleLikeRepository,
	commentLikeRepo domain.CommentLikeRepository,
	notifier domain.NotificationUsecase,
) *Service {
	return &Service{
		txm:             txm,
		articleRepo:     articleRepo,
		commentRepo:     commentRepo,
		articleLikeRepo: articleLikeRepo,
		commentLikeRepo: commentLikeRepo,
		notifier:        notifier,
	}
}

// likeErr maps the schema-drift signal onto the hard failure the like
// surface reports: a toggle must not silently lie about boolean state.
func likeErr(err error) error {
	if errors.Is(err, domain.ErrSchemaMissing) {
		return domain.ErrLikesUnavailable
	}
	return err
}

// ToggleArticleLike flips the (article, user) like row inside one
// transaction and reports the resulting state. The count is recomputed by
// counting rows after the mutation, never adjusted in memory, so concurrent
// toggles serialize under the transaction isolation.
func (s *Service) ToggleArticleLike(ctx context.Context, articleID, userID int64) (domain.LikeResult, error) {
	var res domain.LikeResult
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		article, err := s.articleRepo.GetByID(ctx, articleID)
		if err != nil {
			return err
		}
		if !article.Published() {
			return domain.ErrNotFound
		}

		exists, err := s.articleLikeRepo.Exists(ctx, articleID, userID)
		if err != nil {
			return likeErr(err)
		}

		if exists {
			if err := s.articleLikeRepo.Delete(ctx, articleID, userID); err != nil {
				return likeErr(err)
			}
		} else {
			like := &domain.ArticleLike{ArticleID: articleID, UserID: userID, CreatedAt: time.Now()}
			if err := s.articleLikeRepo.Store(ctx, like); err != nil {
				return likeErr(err)
			}
			if err := s.notifier.Notify(ctx, &domain.Notification{
				RecipientID: article.User.ID,
				ActorID:     userID,
				Type:        domain.NotificationArticleLike,
				ArticleID:   &articleID,
			}); err != nil {
				return err
			}
		}

		count, err := s.articleLikeRepo.CountByArticle(ctx, articleID)
		if err != nil {
			return likeErr(err)
		}
		res = domain.LikeResult{Liked: !exists, Count: count}
		return nil
	})
	if err != nil {
		return domain.LikeResult{}, err
	}
	return res, nil
}

// ToggleCommentLike is the comment-side twin of ToggleArticleLike.
func (s *Service) ToggleCommentLike(ctx context.Context, commentID, userID int64) (domain.LikeResult, error) {
	var res domain.LikeResult
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		comment, err := s.commentRepo.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.Status != domain.CommentPublished {
			return domain.ErrNotFound
		}

		exists, err := s.commentLikeRepo.Exists(ctx, commentID, userID)
		if err != nil {
			return likeErr(err)
		}

		if exists {
			if err := s.commentLikeRepo.Delete(ctx, commentID, userID); err != nil {
				return likeErr(err)
			}
		} else {
			like := &domain.CommentLike{CommentID: commentID, UserID: userID, CreatedAt: time.Now()}
			if err := s.commentLikeRepo.Store(ctx, like); err != nil {
				return likeErr(err)
			}
			if err := s.notifier.Notify(ctx, &domain.Notification{
				RecipientID: comment.UserID,
				ActorID:     userID,
				Type:        domain.NotificationCommentLike,
				ArticleID:   &comment.ArticleID,
				CommentID:   &commentID,
			}); err != nil {
				return err
			}
		}

		count, err := s.commentLikeRepo.CountByComment(ctx, commentID)
		if err != nil {
			return likeErr(err)
		}
		res = domain.LikeResult{Liked: !exists, Count: count}
		return nil
	})
	if err != nil {
		return domain.LikeResult{}, err
	}
	return res, nil
}
