package response

import "github.com/adiwarta/warta/domain"

type Notification struct {
	ID        int64  `json:"id"`
	ActorID   int64  `json:"actor_id"`
	Type      string `json:"type"`
	ArticleID *int64 `json:"article_id,omitempty"`
	CommentID *int64 `json:"comment_id,omitempty"`
	CreatedAt string `json:"created_at"`
	ReadAt    string `json:"read_at,omitempty"`

	Actor *User `json:"actor,omitempty"`
}

type NotificationPage struct {
	Items       []Notification `json:"items"`
	UnreadCount int64          `json:"unread_count"`
	NextCursor  string         `json:"next_cursor,omitempty"`
}

func NewNotificationFromDomain(n *domain.Notification) Notification {
	res := Notification{
		ID:        n.ID,
		ActorID:   n.ActorID,
		Type:      string(n.Type),
		ArticleID: n.ArticleID,
		CommentID: n.CommentID,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
		Actor:     NewUserFromDomain(n.Actor),
	}
	if n.ReadAt != nil {
		res.ReadAt = n.ReadAt.Format(DateTimeFormat)
	}
	return res
}

func NewNotificationPageFromDomain(p domain.NotificationPage) NotificationPage {
	items := make([]Notification, len(p.Items))
	for i := range p.Items {
		items[i] = NewNotificationFromDomain(&p.Items[i])
	}
	return NotificationPage{
		Items:       items,
		UnreadCount: p.UnreadCount,
		NextCursor:  p.NextCursor,
	}
}
