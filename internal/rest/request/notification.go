package request

type MarkNotificationsRead struct {
	// IDs restricts the mark-read to specific notifications; empty marks
	// all of the caller's unread notifications.
	IDs []int64 `json:"ids" binding:"omitempty,dive,gt=0"`
}
