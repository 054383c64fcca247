package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiwarta/warta/domain"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

func (h *likeHandler) ToggleArticleLike(c *gin.Context) {
	h.toggle(c, h.Service.ToggleArticleLike)
}

func (h *likeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, h.Service.ToggleCommentLike)
}

func (h *likeHandler) toggle(c *gin.Context, fn func(ctx context.Context, targetID, userID int64) (domain.LikeResult, error)) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	uid := userID.(int64)

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	res, err := fn(ctx, int64(idP), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
