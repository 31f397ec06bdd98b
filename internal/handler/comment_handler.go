package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minifeed/internal/middleware"
	"minifeed/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// CreateComment 评论；空内容或帖子不存在时不写库，直接回到首页
func (h *CommentHandler) CreateComment(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	_, err := h.svc.CreateComment(c.Request.Context(), username, postID, c.PostForm("body"))
	switch {
	case err == nil, errors.Is(err, service.ErrEmptyBody), errors.Is(err, service.ErrPostNotFound):
		c.Redirect(http.StatusFound, "/")
	default:
		internalError(c, err)
	}
}
