package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwarta/warta/domain"
)

func TestDecideFanout(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }

	// Article author A=1, commenters B=2, C=3.
	tests := []struct {
		name          string
		actor         int64
		articleAuthor int64
		parentAuthor  *int64
		expected      []fanoutTarget
	}{
		{
			name:          "top-level comment notifies article author",
			actor:         2,
			articleAuthor: 1,
			parentAuthor:  nil,
			expected:      []fanoutTarget{{1, domain.NotificationArticleComment}},
		},
		{
			name:          "author commenting own article notifies nobody",
			actor:         1,
			articleAuthor: 1,
			parentAuthor:  nil,
			expected:      nil,
		},
		{
			name:          "reply to third party notifies both",
			actor:         3,
			articleAuthor: 1,
			parentAuthor:  ptr(2),
			expected: []fanoutTarget{
				{1, domain.NotificationArticleComment},
				{2, domain.NotificationCommentReply},
			},
		},
		{
			name:          "reply to article author's comment notifies only once",
			actor:         3,
			articleAuthor: 1,
			parentAuthor:  ptr(1),
			expected:      []fanoutTarget{{1, domain.NotificationCommentReply}},
		},
		{
			name:          "replying to own comment notifies only article author",
			actor:         2,
			articleAuthor: 1,
			parentAuthor:  ptr(2),
			expected:      []fanoutTarget{{1, domain.NotificationArticleComment}},
		},
		{
			name:          "article author replying to a commenter",
			actor:         1,
			articleAuthor: 1,
			parentAuthor:  ptr(2),
			expected:      []fanoutTarget{{2, domain.NotificationCommentReply}},
		},
		{
			name:          "article author replying to own comment notifies nobody",
			actor:         1,
			articleAuthor: 1,
			parentAuthor:  ptr(1),
			expected:      nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := decideFanout(tc.actor, tc.articleAuthor, tc.parentAuthor)
			assert.Equal(t, tc.expected, got)

			// One event never notifies the same person twice.
			seen := map[int64]bool{}
			for _, target := range got {
				assert.False(t, seen[target.RecipientID])
				seen[target.RecipientID] = true
				assert.NotEqual(t, tc.actor, target.RecipientID)
			}
		})
	}
}
