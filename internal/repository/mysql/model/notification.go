package model

import (
	"time"

	"github.com/adiwarta/warta/domain"
)

type Notification struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	RecipientID int64      `gorm:"column:recipient_id;not null;index"`
	ActorID     int64      `gorm:"column:actor_id;not null"`
	Type        string     `gorm:"type:varchar(20);not null"`
	ArticleID   *int64     `gorm:"column:article_id"`
	CommentID   *int64     `gorm:"column:comment_id"`
	CreatedAt   time.Time  `gorm:"type:datetime"`
	ReadAt      *time.Time `gorm:"column:read_at;type:datetime"`
}

func (Notification) TableName() string {
	return "notifications"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Type:        string(n.Type),
		ArticleID:   n.ArticleID,
		CommentID:   n.CommentID,
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ActorID:     m.ActorID,
		Type:        domain.NotificationType(m.Type),
		ArticleID:   m.ArticleID,
		CommentID:   m.CommentID,
		CreatedAt:   m.CreatedAt,
		ReadAt:      m.ReadAt,
	}
}
