package model

import (
	"time"

	"github.com/adiwarta/warta/domain"
)

type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:PUBLISHED"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:     m.ID,
		Title:  m.Title,
		Status: domain.ArticleStatus(m.Status),
		User: domain.User{
			ID: m.UserID,
		},
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}
