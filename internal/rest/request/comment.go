package request

import "github.com/adiwarta/warta/domain"

type Comment struct {
	Content  string `json:"content" binding:"required,max=4000"`
	ParentID *int64 `json:"parent_id" binding:"omitempty,gt=0"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(articleID, userID int64, ip, userAgent string) domain.CommentInput {
	return domain.CommentInput{
		ArticleID: articleID,
		UserID:    userID,
		Content:   r.Content,
		ParentID:  r.ParentID,
		IPAddress: ip,
		UserAgent: userAgent,
	}
}
