package domain

import (
	"context"
	"time"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	// ArticlePublished is the only status whose articles accept engagement.
	ArticlePublished ArticleStatus = "PUBLISHED"
)

// Article is representing the Article data struct.
// Article CRUD itself lives outside this core; engagement only needs the
// identity, the author and the publication status.
type Article struct {
	ID        int64         // Unique identifier for the article
	Title     string        // Article title
	Status    ArticleStatus // Publication state
	User      User          // Author information
	UpdatedAt time.Time     // Last update timestamp
	CreatedAt time.Time     // Creation timestamp
}

// Published reports whether the article may receive comments and likes.
func (a Article) Published() bool {
	return a.Status == ArticlePublished
}

// ArticleRepository defines the read-only contract the engagement core has
// against the article store.
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)
}
