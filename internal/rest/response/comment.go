package response

import "github.com/adiwarta/warta/domain"

type Comment struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	UserID    int64  `json:"user_id"`
	Content   string `json:"content"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	CreatedAt string `json:"created_at"`
	LikeCount int64  `json:"like_count"`
	Liked     bool   `json:"liked"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		LikeCount: c.LikeCount,
		Liked:     c.Liked,
		User:      NewUserFromDomain(c.User),
		Replies:   nil,
	}
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	if len(c.Replies) > 0 {
		replies := make([]*Comment, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, NewSingleCommentFromDomain(r))
		}
		root.Replies = replies
	}
	return root
}
