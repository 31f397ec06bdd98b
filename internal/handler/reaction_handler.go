package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"minifeed/internal/middleware"
	"minifeed/internal/service"
)

type ReactionHandler struct {
	svc *service.ReactionService
}

func NewReactionHandler(svc *service.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// React 幂等：重复的 emoji 不报错
func (h *ReactionHandler) React(c *gin.Context) {
	username, _ := middleware.CurrentUser(c)
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	_, err := h.svc.React(c.Request.Context(), username, postID, c.PostForm("emoji"))
	switch {
	case err == nil, errors.Is(err, service.ErrPostNotFound):
		c.Redirect(http.StatusFound, "/")
	case errors.Is(err, service.ErrEmojiRequired), errors.Is(err, service.ErrEmojiTooLong):
		c.AbortWithStatus(http.StatusBadRequest)
	default:
		internalError(c, err)
	}
}
