package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minifeed/internal/middleware"
	"minifeed/internal/service"
	"minifeed/internal/view"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

func (h *FeedHandler) Feed(c *gin.Context) {
	items, err := h.svc.Load(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	username, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, view.FeedPageName, view.NewFeedPage(username, items))
}
