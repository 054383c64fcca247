package model

import (
	"time"

	"github.com/adiwarta/warta/domain"
)

type ForbiddenTerm struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Phrase           string    `gorm:"type:varchar(255);not null"`
	NormalizedPhrase string    `gorm:"column:normalized_phrase;type:varchar(255);uniqueIndex;not null"`
	CreatedBy        *int64    `gorm:"column:created_by"`
	CreatedAt        time.Time `gorm:"type:datetime"`
}

func (ForbiddenTerm) TableName() string {
	return "forbidden_terms"
}

func NewForbiddenTermFromDomain(t *domain.ForbiddenTerm) *ForbiddenTerm {
	return &ForbiddenTerm{
		ID:               t.ID,
		Phrase:           t.Phrase,
		NormalizedPhrase: t.NormalizedPhrase,
		CreatedBy:        t.CreatedBy,
		CreatedAt:        t.CreatedAt,
	}
}

func (m *ForbiddenTerm) ToDomain() domain.ForbiddenTerm {
	return domain.ForbiddenTerm{
		ID:               m.ID,
		Phrase:           m.Phrase,
		NormalizedPhrase: m.NormalizedPhrase,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
	}
}
