package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{
		DB: db,
	}
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	var article model.Article
	if err := dbFrom(ctx, r.DB).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}
