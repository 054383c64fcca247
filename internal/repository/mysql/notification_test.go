package mysql_test

import (
	"context"
	"testing"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
	mysqlrepo "github.com/adiwarta/warta/internal/repository/mysql"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func missingTableErr() error {
	return &driver.MySQLError{Number: 1146, Message: "Table 'warta.notifications' doesn't exist"}
}

func TestNotificationStore(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewNotificationRepository(gdb)

	mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnResult(sqlmock.NewResult(12, 1))

	articleID := int64(10)
	n := &domain.Notification{
		RecipientID: 1, ActorID: 2, Type: domain.NotificationArticleComment,
		ArticleID: &articleID, CreatedAt: time.Now(),
	}
	err := repo.Store(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationStoreMissingTable(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewNotificationRepository(gdb)

	mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnError(missingTableErr())

	err := repo.Store(context.Background(), &domain.Notification{RecipientID: 1, ActorID: 2})
	assert.ErrorIs(t, err, domain.ErrSchemaMissing)
}

func TestNotificationFetchByRecipient(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewNotificationRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "recipient_id", "actor_id", "type", "article_id", "comment_id", "created_at", "read_at"}).
		AddRow(40, 1, 2, "ARTICLE_COMMENT", 10, 100, now, nil).
		AddRow(39, 1, 3, "COMMENT_REPLY", 10, 101, now, nil)
	mock.ExpectQuery("SELECT (.+) FROM `notifications` WHERE recipient_id = (.+) AND id < (.+) ORDER BY id DESC").
		WillReturnRows(rows)

	res, err := repo.FetchByRecipient(context.Background(), 1, 21, 41)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(40), res[0].ID)
	assert.Equal(t, domain.NotificationCommentReply, res[1].Type)
	require.NotNil(t, res[0].ArticleID)
	assert.Equal(t, int64(10), *res[0].ArticleID)
}

func TestNotificationFetchByRecipientMissingTable(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewNotificationRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `notifications`").
		WillReturnError(missingTableErr())

	_, err := repo.FetchByRecipient(context.Background(), 1, 21, 0)
	assert.ErrorIs(t, err, domain.ErrSchemaMissing)
}

func TestNotificationCountUnread(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewNotificationRepository(gdb)

	mock.ExpectQuery("SELECT count(.+) FROM `notifications` WHERE recipient_id = (.+) AND read_at IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountUnread(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestNotificationMarkRead(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlrepo.NewNotificationRepository(gdb)

	mock.ExpectExec("UPDATE `notifications` SET `read_at`").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.MarkRead(context.Background(), 1, []int64{39, 40}, time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
