package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiwarta/warta/domain"
)

type Service struct {
	termRepo domain.ForbiddenTermRepository
}

var _ domain.ModerationUsecase = (*Service)(nil)

// NewService will create a new moderation service object
func NewService(termRepo domain.ForbiddenTermRepository) *Service {
	return &Service{
		termRepo: termRepo,
	}
}

// DetectForbiddenPhrase loads the stored phrases and matches them against
// the text. The phrase list is re-read per call rather than cached so rule
// changes apply immediately. An unprovisioned term store means no rules.
func (s *Service) DetectForbiddenPhrase(ctx context.Context, text string) (*domain.ForbiddenTerm, error) {
	terms, err := s.termRepo.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaMissing) {
			logrus.Warn("forbidden term store not provisioned, skipping moderation")
			return nil, nil
		}
		return nil, err
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return MatchForbidden(text, terms), nil
}

func (s *Service) AddTerm(ctx context.Context, phrase string, createdBy *int64) (*domain.ForbiddenTerm, error) {
	phrase = strings.Join(strings.Fields(phrase), " ")
	normalized := Normalize(phrase)
	if normalized == "" {
		return nil, domain.ErrBadParamInput
	}

	existing, err := s.termRepo.GetByNormalized(ctx, normalized)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: already covered by %q", domain.ErrConflict, existing.Phrase)
	}

	term := &domain.ForbiddenTerm{
		Phrase:           phrase,
		NormalizedPhrase: normalized,
		CreatedBy:        createdBy,
		CreatedAt:        time.Now(),
	}
	if err := s.termRepo.Store(ctx, term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *Service) FetchTerms(ctx context.Context) ([]domain.ForbiddenTerm, error) {
	return s.termRepo.FetchAll(ctx)
}

func (s *Service) RemoveTerm(ctx context.Context, id int64) error {
	return s.termRepo.Delete(ctx, id)
}
