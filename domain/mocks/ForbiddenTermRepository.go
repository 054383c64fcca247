package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type ForbiddenTermRepository struct {
	mock.Mock
}

func (m *ForbiddenTermRepository) Store(ctx context.Context, t *domain.ForbiddenTerm) error {
	ret := m.Called(ctx, t)
	return ret.Error(0)
}

func (m *ForbiddenTermRepository) GetByNormalized(ctx context.Context, normalized string) (*domain.ForbiddenTerm, error) {
	ret := m.Called(ctx, normalized)
	var res *domain.ForbiddenTerm
	if ret.Get(0) != nil {
		res = ret.Get(0).(*domain.ForbiddenTerm)
	}
	return res, ret.Error(1)
}

func (m *ForbiddenTermRepository) FetchAll(ctx context.Context) ([]domain.ForbiddenTerm, error) {
	ret := m.Called(ctx)
	var res []domain.ForbiddenTerm
	if ret.Get(0) != nil {
		res = ret.Get(0).([]domain.ForbiddenTerm)
	}
	return res, ret.Error(1)
}

func (m *ForbiddenTermRepository) Delete(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}
