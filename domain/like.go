package domain

import (
	"context"
	"time"
)

// ArticleLike is representing a like record on an article. The existence of
// the row is the "liked" boolean; counts are derived by counting rows.
type ArticleLike struct {
	ArticleID int64
	UserID    int64
	CreatedAt time.Time
}

// CommentLike is representing a like record on a comment.
type CommentLike struct {
	CommentID int64
	UserID    int64
	CreatedAt time.Time
}

// LikeResult is the state reported back to the caller after a toggle.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// LikeUsecase flips like state for an article or a comment inside one atomic
// transaction. Returns ErrNotFound when the target is missing or unpublished
// and ErrLikesUnavailable when the like store has not been migrated yet.
type LikeUsecase interface {
	ToggleArticleLike(ctx context.Context, articleID, userID int64) (LikeResult, error)
	ToggleCommentLike(ctx context.Context, commentID, userID int64) (LikeResult, error)
}

// ArticleLikeRepository 文章点赞存取接口
type ArticleLikeRepository interface {
	// Exists reports whether the (article, user) like row exists.
	Exists(ctx context.Context, articleID, userID int64) (bool, error)

	// Store inserts the like row. Returns ErrConflict when the unique
	// (article, user) pair already exists.
	Store(ctx context.Context, like *ArticleLike) error

	// Delete removes the like row if present.
	Delete(ctx context.Context, articleID, userID int64) error

	// CountByArticle counts the like rows for one article.
	CountByArticle(ctx context.Context, articleID int64) (int64, error)
}

// CommentLikeRepository 评论点赞存取接口
type CommentLikeRepository interface {
	Exists(ctx context.Context, commentID, userID int64) (bool, error)
	Store(ctx context.Context, like *CommentLike) error
	Delete(ctx context.Context, commentID, userID int64) error
	CountByComment(ctx context.Context, commentID int64) (int64, error)

	// CountByComments counts like rows for many comments at once.
	// Comments with no likes are absent from the map.
	CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error)

	// LikedByUser reports, for many comments at once, which of them the
	// given user has liked.
	LikedByUser(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error)
}
