package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiwarta/warta/domain"
)

type moderationHandler struct {
	Service domain.ModerationUsecase
}

func NewModerationHandler(svc domain.ModerationUsecase) *moderationHandler {
	return &moderationHandler{
		Service: svc,
	}
}

type forbiddenTermRequest struct {
	Phrase string `json:"phrase" binding:"required,max=255"`
}

func (h *moderationHandler) AddTerm(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}
	uid := userID.(int64)

	var req forbiddenTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	term, err := h.Service.AddTerm(ctx, req.Phrase, &uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"term": term})
}

func (h *moderationHandler) FetchTerms(c *gin.Context) {
	ctx := c.Request.Context()
	terms, err := h.Service.FetchTerms(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"terms": terms})
}

func (h *moderationHandler) RemoveTerm(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.RemoveTerm(ctx, int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Term removed"})
}
