package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/repository/mysql/model"
)

// commentAccessor is the capability seam for the comment table. The typed
// accessor works through the full gorm model; the raw accessor issues
// equivalent parametrized statements against the base columns only, for
// deployments running ahead of the origin-metadata migration.
type commentAccessor interface {
	insert(db *gorm.DB, c *domain.Comment) error
	getByID(db *gorm.DB, id int64) (*domain.Comment, error)
	fetchByArticle(db *gorm.DB, articleID int64) ([]*domain.Comment, error)
}

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// accessor selects the data-access path by probing the schema, not by
// catching errors, so the happy path stays explicit.
func (c *commentRepository) accessor(db *gorm.DB) commentAccessor {
	if hasColumn(db, &model.Comment{}, "ip_address") {
		return typedCommentAccessor{}
	}
	return rawCommentAccessor{}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	db := dbFrom(ctx, c.DB)
	return c.accessor(db).insert(db, comment)
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	db := dbFrom(ctx, c.DB)
	return c.accessor(db).getByID(db, id)
}

func (c *commentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	db := dbFrom(ctx, c.DB)
	return c.accessor(db).fetchByArticle(db, articleID)
}

type typedCommentAccessor struct{}

func (typedCommentAccessor) insert(db *gorm.DB, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	if err := db.Create(row).Error; err != nil {
		return schemaErr(err)
	}
	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	comment.UpdatedAt = row.UpdatedAt
	return nil
}

func (typedCommentAccessor) getByID(db *gorm.DB, id int64) (*domain.Comment, error) {
	var row model.Comment
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, schemaErr(err)
	}
	res := row.ToDomain()
	return &res, nil
}

func (typedCommentAccessor) fetchByArticle(db *gorm.DB, articleID int64) ([]*domain.Comment, error) {
	var rows []model.Comment
	err := db.
		Where("article_id = ? AND status = ?", articleID, string(domain.CommentPublished)).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	res := make([]*domain.Comment, 0, len(rows))
	for i := range rows {
		comment := rows[i].ToDomain()
		res = append(res, &comment)
	}
	return res, nil
}

// rawCommentAccessor touches only the columns every supported schema
// revision has. Origin metadata is dropped on write and zeroed on read.
type rawCommentAccessor struct{}

// legacyCommentRow mirrors the pre-migration column set.
type legacyCommentRow struct {
	ID        int64
	ArticleID int64
	UserID    int64
	Content   string
	ParentID  *int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const legacyCommentColumns = "id, article_id, user_id, content, parent_id, status, created_at, updated_at"

func (r legacyCommentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		ArticleID: r.ArticleID,
		UserID:    r.UserID,
		Content:   r.Content,
		ParentID:  r.ParentID,
		Status:    domain.CommentStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (rawCommentAccessor) insert(db *gorm.DB, comment *domain.Comment) error {
	now := time.Now()
	err := db.Exec(
		"INSERT INTO comment (article_id, user_id, content, parent_id, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		comment.ArticleID, comment.UserID, comment.Content, comment.ParentID,
		string(comment.Status), now, now,
	).Error
	if err != nil {
		return schemaErr(err)
	}
	// Valid on the same connection; Store always runs inside a tx scope.
	var id int64
	if err := db.Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error; err != nil {
		return err
	}
	comment.ID = id
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return nil
}

func (rawCommentAccessor) getByID(db *gorm.DB, id int64) (*domain.Comment, error) {
	var rows []legacyCommentRow
	err := db.Raw(
		"SELECT "+legacyCommentColumns+" FROM comment WHERE id = ? LIMIT 1", id,
	).Scan(&rows).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	res := rows[0].toDomain()
	return &res, nil
}

func (rawCommentAccessor) fetchByArticle(db *gorm.DB, articleID int64) ([]*domain.Comment, error) {
	var rows []legacyCommentRow
	err := db.Raw(
		"SELECT "+legacyCommentColumns+" FROM comment WHERE article_id = ? AND status = ? ORDER BY created_at ASC, id ASC",
		articleID, string(domain.CommentPublished),
	).Scan(&rows).Error
	if err != nil {
		return nil, schemaErr(err)
	}
	res := make([]*domain.Comment, 0, len(rows))
	for i := range rows {
		comment := rows[i].toDomain()
		res = append(res, &comment)
	}
	return res, nil
}
