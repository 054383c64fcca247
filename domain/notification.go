package domain

import (
	"context"
	"time"
)

// NotificationType classifies what triggered a notification.
type NotificationType string

const (
	NotificationArticleComment NotificationType = "ARTICLE_COMMENT"
	NotificationCommentReply   NotificationType = "COMMENT_REPLY"
	NotificationArticleLike    NotificationType = "ARTICLE_LIKE"
	NotificationCommentLike    NotificationType = "COMMENT_LIKE"
)

// Notification is an immutable inbox record. Self-notifications are never
// persisted: recipient != actor holds for every stored row.
type Notification struct {
	ID          int64            `json:"id"`
	RecipientID int64            `json:"recipient_id"`
	ActorID     int64            `json:"actor_id"`
	Type        NotificationType `json:"type"`
	ArticleID   *int64           `json:"article_id,omitempty"`
	CommentID   *int64           `json:"comment_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`

	// Actor 触发通知的用户信息
	Actor *User `json:"actor,omitempty"`
}

// NotificationPage is one keyset-paginated slice of a user's inbox.
type NotificationPage struct {
	Items []Notification `json:"items"`
	// UnreadCount is the total unread count for the user, independent of
	// the page fetched.
	UnreadCount int64  `json:"unread_count"`
	NextCursor  string `json:"next_cursor,omitempty"`
}

// NotificationUsecase creates, lists, counts and marks-read notifications.
// Every operation tolerates an unmigrated notification store: creation is
// swallowed silently and reads return zeroed results.
type NotificationUsecase interface {
	// Notify inserts one notification. It is a no-op (not an error) when
	// the recipient is zero or equals the actor. When the surrounding
	// context carries a transaction scope the insert joins it.
	Notify(ctx context.Context, n *Notification) error

	// Fetch returns one page of the user's inbox, newest first, using the
	// last-seen notification ID as exclusive cursor. limit is clamped to
	// [1, 50] with a default of 20.
	Fetch(ctx context.Context, userID int64, limit int64, cursor string) (NotificationPage, error)

	// UnreadCount returns the total number of unread notifications.
	UnreadCount(ctx context.Context, userID int64) (int64, error)

	// MarkRead stamps the read timestamp on the user's unread rows,
	// restricted to ids when given, otherwise on all of them. It never
	// touches another user's rows.
	MarkRead(ctx context.Context, userID int64, ids []int64) error
}

// NotificationRepository 通知存取接口
type NotificationRepository interface {
	// Store persists the notification and backfills its ID.
	// Returns ErrSchemaMissing when the store is not provisioned.
	Store(ctx context.Context, n *Notification) error

	// FetchByRecipient returns up to limit rows newest first, strictly
	// below beforeID when beforeID > 0.
	FetchByRecipient(ctx context.Context, userID, limit, beforeID int64) ([]Notification, error)

	// CountUnread counts the user's rows with no read timestamp.
	CountUnread(ctx context.Context, userID int64) (int64, error)

	// MarkRead sets read_at = at on the user's unread rows, restricted to
	// ids when non-empty.
	MarkRead(ctx context.Context, userID int64, ids []int64, at time.Time) error
}
