package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adiwarta/warta/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ret := m.Called(ctx, id)
	var res *domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).(*domain.Comment)
	}
	return res, ret.Error(1)
}

func (m *CommentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, articleID)
	var res []*domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).([]*domain.Comment)
	}
	return res, ret.Error(1)
}
