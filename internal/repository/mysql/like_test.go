package mysql_test

import (
	"context"
	"testing"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/adiwarta/warta/domain"
	mysqlrepo "github.com/adiwarta/warta/internal/repository/mysql"
)

func TestArticleLikeExists(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewArticleLikeRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "article_id", "user_id"}).AddRow(1, 10, 2)
	mock.ExpectQuery("SELECT (.+) FROM `article_likes` WHERE article_id = (.+) AND user_id = (.+)").
		WillReturnRows(rows)

	exists, err := repo.Exists(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestArticleLikeExistsNoRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewArticleLikeRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `article_likes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "article_id", "user_id"}))

	exists, err := repo.Exists(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleLikeStoreDuplicate(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewArticleLikeRepository(gdb)

	mock.ExpectExec("INSERT INTO `article_likes`").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry '10-2'"})

	err := repo.Store(context.Background(), &domain.ArticleLike{ArticleID: 10, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestArticleLikeStoreMissingTable(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewArticleLikeRepository(gdb)

	mock.ExpectExec("INSERT INTO `article_likes`").
		WillReturnError(missingTableErr())

	err := repo.Store(context.Background(), &domain.ArticleLike{ArticleID: 10, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrSchemaMissing)
}

func TestCommentLikeCountByComments(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewCommentLikeRepository(gdb)

	rows := sqlmock.NewRows([]string{"comment_id", "total"}).
		AddRow(50, 3).
		AddRow(52, 1)
	mock.ExpectQuery("SELECT comment_id, COUNT(.+) AS total FROM `comment_likes` WHERE comment_id IN (.+) GROUP BY `comment_id`").
		WillReturnRows(rows)

	counts, err := repo.CountByComments(context.Background(), []int64{50, 51, 52})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{50: 3, 52: 1}, counts)
}

func TestCommentLikeCountByCommentsEmptyInput(t *testing.T) {
	gdb, _ := newMockDB(t)
	repo := mysqlrepo.NewCommentLikeRepository(gdb)

	counts, err := repo.CountByComments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCommentLikeLikedByUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewCommentLikeRepository(gdb)

	rows := sqlmock.NewRows([]string{"comment_id"}).AddRow(50)
	mock.ExpectQuery("SELECT `comment_id` FROM `comment_likes` WHERE user_id = (.+) AND comment_id IN (.+)").
		WillReturnRows(rows)

	liked, err := repo.LikedByUser(context.Background(), 2, []int64{50, 51})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{50: true}, liked)
}

func TestCommentLikeDelete(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewCommentLikeRepository(gdb)

	mock.ExpectExec("DELETE FROM `comment_likes` WHERE comment_id = (.+) AND user_id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 50, 2)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
