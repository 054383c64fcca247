package comment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/adiwarta/warta/domain"
)

const (
	// Submission quota per user, fixed window.
	rateLimitMax    = 5
	rateLimitWindow = time.Minute
)

var validate = validator.New()

type Service struct {
	txm         domain.TxManager
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	likeRepo    domain.CommentLikeRepository
	userRepo    domain.UserRepository
	moderation  domain.ModerationUsecase
	notifier    domain.NotificationUsecase
	limiter     domain.RateLimiter
	config      domain.SiteConfig
	audit       domain.AuditLogger
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(
	txm domain.TxManager,
	commentRepo domain.CommentRepository,
	articleRepo domain.ArticleRepository,
	likeRepo domain.CommentLikeRepository,
	userRepo domain.UserRepository,
	moderation domain.ModerationUsecase,
	notifier domain.NotificationUsecase,
	limiter domain.RateLimiter,
	config domain.SiteConfig,
	audit domain.AuditLogger,
) *Service {
	return &Service{
		txm:         txm,
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		moderation:  moderation,
		notifier:    notifier,
		limiter:     limiter,
		config:      config,
		audit:       audit,
	}
}

// Create runs the comment submission pipeline: rate limit, validate,
// sanitize, moderate, target and parent checks, site switch, insert, audit,
// notification fan-out. Each step may end the pipeline with one of the named
// failures; no partial state is observable to the caller.
func (s *Service) Create(ctx context.Context, in domain.CommentInput) (*domain.Comment, error) {
	limited, err := s.limiter.IsLimited(ctx, fmt.Sprintf("comment:%d", in.UserID), rateLimitMax, rateLimitWindow)
	if err != nil {
		// Fail open: losing the limiter must not take commenting down.
		logrus.Warnf("rate limiter unavailable: %v", err)
	} else if limited {
		return nil, domain.ErrRateLimited
	}

	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	content := Sanitize(in.Content)

	term, err := s.moderation.DetectForbiddenPhrase(ctx, content)
	if err != nil {
		return nil, err
	}
	if term != nil {
		return nil, &domain.ForbiddenTermError{Phrase: term.Phrase}
	}

	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyComment
	}

	article, err := s.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return nil, err
	}
	if !article.Published() {
		return nil, domain.ErrNotFound
	}

	var parent *domain.Comment
	if in.ParentID != nil {
		parent, err = s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrInvalidParent
			}
			return nil, err
		}
		// Replies only to published top-level comments of the same article.
		if !parent.TopLevel() || parent.ArticleID != in.ArticleID || parent.Status != domain.CommentPublished {
			return nil, domain.ErrInvalidParent
		}
	}

	if !s.config.CommentsEnabled(ctx) {
		return nil, domain.ErrCommentsDisabled
	}

	comment := &domain.Comment{
		ArticleID: in.ArticleID,
		UserID:    in.UserID,
		Content:   content,
		ParentID:  in.ParentID,
		Status:    domain.CommentPublished,
		IPAddress: truncate(in.IPAddress, 45),
		UserAgent: truncate(in.UserAgent, 255),
	}
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		return s.commentRepo.Store(ctx, comment)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record("comment.create", "comment", comment.ID, map[string]any{
		"article_id": comment.ArticleID,
		"parent_id":  comment.ParentID,
	}, &in.UserID)

	// Fan out after the insert is durably committed.
	var parentAuthorID *int64
	if parent != nil {
		parentAuthorID = &parent.UserID
	}
	for _, target := range decideFanout(in.UserID, article.User.ID, parentAuthorID) {
		n := &domain.Notification{
			RecipientID: target.RecipientID,
			ActorID:     in.UserID,
			Type:        target.Type,
			ArticleID:   &comment.ArticleID,
			CommentID:   &comment.ID,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			logrus.Warnf("failed to notify user %d about comment %d: %v", target.RecipientID, comment.ID, err)
		}
	}

	return comment, nil
}

// FetchTree returns the article's published comments as a sorted two-level
// forest with per-node like metadata. Like data degrades to zeroes when its
// store is not provisioned; the read itself never fails over that.
func (s *Service) FetchTree(ctx context.Context, articleID int64, viewerID int64) ([]*domain.Comment, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*domain.Comment{}, nil
	}

	s.fillLikeDetails(ctx, comments, viewerID)

	if err := s.fillUserDetails(ctx, comments); err != nil {
		logrus.Warnf("failed to fill comment authors: %v", err)
	}

	return buildTree(comments), nil
}

func (s *Service) fillLikeDetails(ctx context.Context, comments []*domain.Comment, viewerID int64) {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	counts, err := s.likeRepo.CountByComments(ctx, ids)
	if err != nil {
		if !errors.Is(err, domain.ErrSchemaMissing) {
			logrus.Warnf("failed to count comment likes: %v", err)
		}
		return
	}
	for _, c := range comments {
		c.LikeCount = counts[c.ID]
	}

	if viewerID <= 0 {
		return
	}
	liked, err := s.likeRepo.LikedByUser(ctx, viewerID, ids)
	if err != nil {
		if !errors.Is(err, domain.ErrSchemaMissing) {
			logrus.Warnf("failed to resolve viewer likes: %v", err)
		}
		return
	}
	for _, c := range comments {
		c.Liked = liked[c.ID]
	}
}

// fillUserDetails resolves the distinct comment authors concurrently.
func (s *Service) fillUserDetails(ctx context.Context, comments []*domain.Comment) error {
	mapUsers := map[int64]domain.User{}
	for _, c := range comments {
		mapUsers[c.UserID] = domain.User{}
	}

	g, gctx := errgroup.WithContext(ctx)
	chanUser := make(chan domain.User)
	for userID := range mapUsers {
		g.Go(func() error {
			res, err := s.userRepo.GetByID(gctx, userID)
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
		return err
	}

	for _, c := range comments {
		if user, ok := mapUsers[c.UserID]; ok && user != (domain.User{}) {
			u := user
			c.User = &u
		}
	}
	return nil
}

// buildTree indexes the flat rows by id and hangs each comment whose parent
// is present under that parent; everything else becomes a root. Both levels
// end up sorted ascending by creation time.
func buildTree(comments []*domain.Comment) []*domain.Comment {
	index := make(map[int64]*domain.Comment, len(comments))
	for _, c := range comments {
		index[c.ID] = c
	}

	roots := make([]*domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ParentID != nil {
			if parent, ok := index[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		roots = append(roots, c)
	}

	sortTree(roots)
	return roots
}

func sortTree(nodes []*domain.Comment) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].CreatedAt.Equal(nodes[j].CreatedAt) {
			return nodes[i].ID < nodes[j].ID
		}
		return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
	})
	for _, n := range nodes {
		if len(n.Replies) > 0 {
			sortTree(n.Replies)
		}
	}
}

// truncate shortens s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
