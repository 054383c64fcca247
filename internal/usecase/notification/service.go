package notification

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

type Service struct {
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
}

var _ domain.NotificationUsecase = (*Service)(nil)

// NewService will create a new notification service object
func NewService(n domain.NotificationRepository, u domain.UserRepository) *Service {
	return &Service{
		notificationRepo: n,
		userRepo:         u,
	}
}

// Notify inserts one notification row. Empty and self-directed recipients
// are skipped without error, and an unprovisioned notification store is
// swallowed silently: notifications are a best-effort feature.
func (s *Service) Notify(ctx context.Context, n *domain.Notification) error {
	if n.RecipientID == 0 || n.RecipientID == n.ActorID {
		return nil
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	err := s.notificationRepo.Store(ctx, n)
	if errors.Is(err, domain.ErrSchemaMissing) {
		logrus.Warn("notification store not provisioned, dropping notification")
		return nil
	}
	return err
}

func (s *Service) Fetch(ctx context.Context, userID int64, limit int64, cursor string) (domain.NotificationPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	beforeID, err := repository.DecodeCursor(cursor)
	if err != nil {
		return domain.NotificationPage{}, err
	}

	// Fetch one row beyond the page to learn whether a next page exists.
	items, err := s.notificationRepo.FetchByRecipient(ctx, userID, limit+1, beforeID)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaMissing) {
			return domain.NotificationPage{Items: []domain.Notification{}}, nil
		}
		return domain.NotificationPage{}, err
	}

	page := domain.NotificationPage{}
	if int64(len(items)) > limit {
		items = items[:limit]
		page.NextCursor = repository.EncodeCursor(items[len(items)-1].ID)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrSchemaMissing) {
		return domain.NotificationPage{}, err
	}
	page.UnreadCount = unread

	items, err = s.fillActorDetails(ctx, items)
	if err != nil {
		logrus.Warnf("failed to fill notification actors: %v", err)
	}
	page.Items = items
	return page, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if errors.Is(err, domain.ErrSchemaMissing) {
		return 0, nil
	}
	return count, err
}

func (s *Service) MarkRead(ctx context.Context, userID int64, ids []int64) error {
	err := s.notificationRepo.MarkRead(ctx, userID, ids, time.Now())
	if errors.Is(err, domain.ErrSchemaMissing) {
		return nil
	}
	return err
}

// fillActorDetails resolves the distinct actors of a page concurrently,
// errgroup-fanned the same way article reads fill their authors.
func (s *Service) fillActorDetails(ctx context.Context, items []domain.Notification) ([]domain.Notification, error) {
	if len(items) == 0 {
		return []domain.Notification{}, nil
	}

	mapUsers := map[int64]domain.User{}
	for i := range items {
		mapUsers[items[i].ActorID] = domain.User{}
	}

	g, gctx := errgroup.WithContext(ctx)
	chanUser := make(chan domain.User)
	for actorID := range mapUsers {
		g.Go(func() error {
			res, err := s.userRepo.GetByID(gctx, actorID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		if err := g.Wait(); err != nil {
			logrus.Error(err)
		}
	}()

	for user := range chanUser {
		if user != (domain.User{}) {
			mapUsers[user.ID] = user
		}
	}

	if err := g.Wait(); err != nil {
		return items, err
	}

	for i := range items {
		if actor, ok := mapUsers[items[i].ActorID]; ok && actor != (domain.User{}) {
			u := actor
			items[i].Actor = &u
		}
	}
	return items, nil
}
