package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Article), ret.Error(1)
}
