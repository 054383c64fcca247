package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiwarta/warta/domain"
	"github.com/adiwarta/warta/internal/rest/request"
	"github.com/adiwarta/warta/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	// Set by the authentication middleware
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
	aid := int64(idP)

	in := req.ToDomain(aid, uid, c.ClientIP(), c.Request.UserAgent())

	ctx := c.Request.Context()
	comment, err := h.Service.Create(ctx, in)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": response.NewCommentFromDomain(comment)})
}

func (h *commentHandler) FetchCommentsByArticle(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	aid := int64(idP)

	// Viewer identity is optional on the read side.
	var viewerID int64
	if userID, exists := c.Get("user_id"); exists {
		viewerID = userID.(int64)
	}

	ctx := c.Request.Context()
	tree, err := h.Service.FetchTree(ctx, aid, viewerID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, len(tree))
	for i := range tree {
		res[i] = response.NewCommentFromDomain(tree[i])
	}
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
