package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	ret := m.Called(ctx, userIDs)
	var res []domain.User
	if ret.Get(0) != nil {
		res = ret.Get(0).([]domain.User)
	}
	return res, ret.Error(1)
}
