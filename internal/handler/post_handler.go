package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minifeed/internal/middleware"
	"minifeed/internal/service"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// CreatePost 发帖；空内容直接回到首页
func (h *PostHandler) CreatePost(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)

	_, err := h.svc.CreatePost(c.Request.Context(), username, c.PostForm("body"))
	if err != nil && !errors.Is(err, service.ErrEmptyBody) {
		internalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
