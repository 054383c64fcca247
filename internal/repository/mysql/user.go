package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := dbFrom(ctx, m.DB).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) ([]domain.User, error) {
	var users []model.User
	err := dbFrom(ctx, m.DB).Model(&model.User{}).Where("id in ?", uids).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}
