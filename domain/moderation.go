package domain

import (
	"context"
	"time"
)

// ForbiddenTerm is a banned phrase. NormalizedPhrase is the diacritic-free,
// lower-case, single-spaced comparable form and is globally unique.
type ForbiddenTerm struct {
	ID               int64     `json:"id"`
	Phrase           string    `json:"phrase"`
	NormalizedPhrase string    `json:"normalized_phrase"`
	CreatedBy        *int64    `json:"created_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ModerationUsecase gates comment text against the stored forbidden phrases
// and administers the phrase list.
type ModerationUsecase interface {
	// DetectForbiddenPhrase returns the first stored term whose normalized
	// form is a substring of the normalized text, or nil when the text is
	// clean or no terms are stored.
	DetectForbiddenPhrase(ctx context.Context, text string) (*ForbiddenTerm, error)

	// AddTerm stores a new phrase. Two phrases that normalize identically
	// cannot both be stored; the error names the existing phrase.
	AddTerm(ctx context.Context, phrase string, createdBy *int64) (*ForbiddenTerm, error)

	// FetchTerms lists all stored terms.
	FetchTerms(ctx context.Context) ([]ForbiddenTerm, error)

	// RemoveTerm deletes a term by ID.
	RemoveTerm(ctx context.Context, id int64) error
}

// ForbiddenTermRepository 违禁词存取接口
type ForbiddenTermRepository interface {
	Store(ctx context.Context, t *ForbiddenTerm) error
	GetByNormalized(ctx context.Context, normalized string) (*ForbiddenTerm, error)
	FetchAll(ctx context.Context) ([]ForbiddenTerm, error)
	Delete(ctx context.Context, id int64) error
}
