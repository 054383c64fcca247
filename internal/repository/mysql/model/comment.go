package model

import (
	"time"

	"github.com/adiwarta/warta/domain"
)

// Comment is the full comment row, including the origin-metadata columns
// added by the engagement migration wave. Deployments running ahead of that
// wave fall back to the raw accessor which touches only the base columns.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	ParentID  *int64    `gorm:"column:parent_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:PUBLISHED"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent string    `gorm:"column:user_agent;type:varchar(255)"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		Status:    string(c.Status),
		IPAddress: c.IPAddress,
		UserAgent: c.UserAgent,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		Status:    domain.CommentStatus(m.Status),
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
