package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

type forbiddenTermRepository struct {
	DB *gorm.DB
}

var _ domain.ForbiddenTermRepository = (*forbiddenTermRepository)(nil)

func NewForbiddenTermRepository(db *gorm.DB) *forbiddenTermRepository {
	return &forbiddenTermRepository{
		DB: db,
	}
}

func (r *forbiddenTermRepository) Store(ctx context.Context, t *domain.ForbiddenTerm) error {
	row := model.NewForbiddenTermFromDomain(t)
	if err := dbFrom(ctx, r.DB).Create(row).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return schemaErr(err)
	}
	t.ID = row.ID
	t.CreatedAt = row.CreatedAt
	return nil
}

func (r *forbiddenTermRepository) GetByNormalized(ctx context.Context, normalized string) (*domain.ForbiddenTerm, error) {
	var row model.ForbiddenTerm
	err := dbFrom(ctx, r.DB).First(&row, "normalized_phrase = ?", normalized).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, schemaErr(err)
	}
	res := row.ToDomain()
	return &res, nil
}

func (r *forbiddenTermRepository) FetchAll(ctx context.Context) ([]domain.ForbiddenTerm, error) {
	var rows []model.ForbiddenTerm
	err := dbFrom(ctx, r.DB).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	res := make([]domain.ForbiddenTerm, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *forbiddenTermRepository) Delete(ctx context.Context, id int64) error {
	result := dbFrom(ctx, r.DB).Delete(&model.ForbiddenTerm{}, "id = ?", id)
	if result.Error != nil {
		return schemaErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
