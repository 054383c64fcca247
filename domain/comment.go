package domain

import (
	"context"
	"time"
)

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	// CommentPublished is the only status this core writes or reads.
	// Other values are reserved for future moderation workflows.
	CommentPublished CommentStatus = "PUBLISHED"
)

// Comment domain model. Nesting is at most one level deep: a comment either
// has no parent, or its parent is itself a top-level comment.
type Comment struct {
	ID        int64         `json:"id"`
	ArticleID int64         `json:"article_id"`
	UserID    int64         `json:"user_id"`
	Content   string        `json:"content"`
	ParentID  *int64        `json:"parent_id,omitempty"`
	Status    CommentStatus `json:"status"`
	IPAddress string        `json:"-"`
	UserAgent string        `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
	// LikeCount is derived by counting like rows at read time.
	LikeCount int64 `json:"like_count"`
	// Liked reports whether the requesting viewer has liked this comment.
	Liked bool `json:"liked"`
}

// TopLevel reports whether the comment has no parent.
func (c *Comment) TopLevel() bool {
	return c.ParentID == nil
}

// CommentInput is the validated shape of a comment submission.
type CommentInput struct {
	ArticleID int64  `validate:"required,gt=0"`
	UserID    int64  `validate:"required,gt=0"`
	Content   string `validate:"required,max=4000"`
	ParentID  *int64 `validate:"omitempty,gt=0"`
	IPAddress string `validate:"omitempty,max=45"`
	UserAgent string `validate:"omitempty,max=255"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create validates, sanitizes, moderates and stores a new comment or
	// reply, then fans out notifications. The returned comment carries the
	// generated ID and timestamps.
	Create(ctx context.Context, in CommentInput) (*Comment, error)

	// FetchTree returns the published comments of an article as a two-level
	// forest sorted ascending by creation time on both levels. viewerID may
	// be zero for anonymous readers; when set, each node reports whether
	// that viewer has liked it.
	FetchTree(ctx context.Context, articleID int64, viewerID int64) ([]*Comment, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store persists the comment and backfills ID and timestamps.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a comment. Returns ErrNotFound if it doesn't exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// FetchByArticle returns all published comments of an article ordered
	// ascending by creation time, flat (no tree assembly).
	FetchByArticle(ctx context.Context, articleID int64) ([]*Comment, error)
}
