package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/rest/request"
	"github.com/adiwarta/warta/internal/rest/response"
)

type notificationHandler struct {
	Service domain.NotificationUsecase
}

func NewNotificationHandler(svc domain.NotificationUsecase) *notificationHandler {
	return &notificationHandler{
		Service: svc,
	}
}

func (h *notificationHandler) FetchNotifications(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	uid := userID.(int64)

	limit, _ := strconv.Atoi(c.Query("limit"))
	cursor := c.Query("cursor")

	ctx := c.Request.Context()
	page, err := h.Service.Fetch(ctx, uid, int64(limit), cursor)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Header("X-cursor", page.NextCursor)
	c.JSON(http.StatusOK, response.NewNotificationPageFromDomain(page))
}

func (h *notificationHandler) UnreadCount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	uid := userID.(int64)

	ctx := c.Request.Context()
	count, err := h.Service.UnreadCount(ctx, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *notificationHandler) MarkRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	uid := userID.(int64)

	// An empty body marks everything unread as read.
	var req request.MarkNotificationsRead
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.MarkRead(ctx, uid, req.IDs); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read"})
}
