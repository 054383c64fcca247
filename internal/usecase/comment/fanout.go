package comment

import "github.com/adiwarta/warta/domain"

// fanoutTarget is one (recipient, type) pair produced by a comment event.
type fanoutTarget struct {
	RecipientID int64
	Type        domain.NotificationType
}

// decideFanout evaluates the notification rules for one new comment as an
// explicit table over (hasParent, articleAuthor, parentAuthor, actor).
// parentAuthorID is nil for top-level comments.
//
// The two rules are independent and may both fire, but the same person is
// never notified twice for one event:
//   - the article author hears ARTICLE_COMMENT unless they wrote the
//     comment themselves, or they authored the parent (the reply rule
//     already reaches them);
//   - the parent author hears COMMENT_REPLY unless they wrote the comment
//     themselves.
func decideFanout(actorID, articleAuthorID int64, parentAuthorID *int64) []fanoutTarget {
	var targets []fanoutTarget

	articleRule := parentAuthorID == nil || *parentAuthorID != articleAuthorID
	if articleRule && articleAuthorID != actorID {
		targets = append(targets, fanoutTarget{
			RecipientID: articleAuthorID,
			Type:        domain.NotificationArticleComment,
		})
	}

	if parentAuthorID != nil && *parentAuthorID != actorID {
		targets = append(targets, fanoutTarget{
			RecipientID: *parentAuthorID,
			Type:        domain.NotificationCommentReply,
		})
	}

	return targets
}
