package model

import (
	"time"

	"github.com/adiwarta/warta/domain"
)

type ArticleLike struct {
	ArticleID int64     `gorm:"column:article_id;not null;uniqueIndex:idx_article_user_like"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_article_user_like"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (ArticleLike) TableName() string {
	return "article_likes"
}

func NewArticleLikeFromDomain(l *domain.ArticleLike) *ArticleLike {
	return &ArticleLike{
		ArticleID: l.ArticleID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}

type CommentLike struct {
	CommentID int64     `gorm:"column:comment_id;not null;uniqueIndex:idx_comment_user_like"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_comment_user_like"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func NewCommentLikeFromDomain(l *domain.CommentLike) *CommentLike {
	return &CommentLike{
		CommentID: l.CommentID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}
