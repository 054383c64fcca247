package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

type articleLikeRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleLikeRepository = (*articleLikeRepository)(nil)

func NewArticleLikeRepository(db *gorm.DB) *articleLikeRepository {
	return &articleLikeRepository{
		DB: db,
	}
}

func (r *articleLikeRepository) Exists(ctx context.Context, articleID, userID int64) (bool, error) {
	var row model.ArticleLike
	err := dbFrom(ctx, r.DB).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, schemaErr(err)
	}
	return true, nil
}

func (r *articleLikeRepository) Store(ctx context.Context, like *domain.ArticleLike) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	err := dbFrom(ctx, r.DB).Create(model.NewArticleLikeFromDomain(like)).Error
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return schemaErr(err)
	}
	return nil
}

func (r *articleLikeRepository) Delete(ctx context.Context, articleID, userID int64) error {
	err := dbFrom(ctx, r.DB).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&model.ArticleLike{}).Error
	return schemaErr(err)
}

func (r *articleLikeRepository) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.DB).
		Model(&model.ArticleLike{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	if err != nil {
		return 0, schemaErr(err)
	}
	return count, nil
}

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

func (r *commentLikeRepository) Exists(ctx context.Context, commentID, userID int64) (bool, error) {
	var row model.CommentLike
	err := dbFrom(ctx, r.DB).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, schemaErr(err)
	}
	return true, nil
}

func (r *commentLikeRepository) Store(ctx context.Context, like *domain.CommentLike) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	err := dbFrom(ctx, r.DB).Create(model.NewCommentLikeFromDomain(like)).Error
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return schemaErr(err)
	}
	return nil
}

func (r *commentLikeRepository) Delete(ctx context.Context, commentID, userID int64) error {
	err := dbFrom(ctx, r.DB).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{}).Error
	return schemaErr(err)
}

func (r *commentLikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.DB).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, schemaErr(err)
	}
	return count, nil
}

type commentLikeCount struct {
	CommentID int64
	Total     int64
}

func (r *commentLikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	res := make(map[int64]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return res, nil
	}
	var rows []commentLikeCount
	err := dbFrom(ctx, r.DB).
		Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS total").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Find(&rows).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	for _, row := range rows {
		res[row.CommentID] = row.Total
	}
	return res, nil
}

func (r *commentLikeRepository) LikedByUser(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return res, nil
	}
	var liked []int64
	err := dbFrom(ctx, r.DB).
		Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &liked).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	for _, id := range liked {
		res[id] = true
	}
	return res, nil
}
