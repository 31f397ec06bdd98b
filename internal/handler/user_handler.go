package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"minifeed/internal/middleware"
	"minifeed/internal/service"
	"minifeed/internal/view"
)

type UserHandler struct {
	users    *service.UserService
	sessions *service.SessionService
	cookie   middleware.SessionCookie
}

// CredentialsForm is the body of both the register and the login form.
type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login failures stay generic; registration names the conflict.
var formMessages = map[error]string{
	service.ErrFieldsRequired:     "All fields are required.",
	service.ErrUsernameTaken:      "Username already exists.",
	service.ErrInvalidCredentials: "Invalid credentials",
	service.ErrPasswordTooLong:    "Password must be at most 72 bytes.",
}

func NewUserHandler(users *service.UserService, sessions *service.SessionService, cookie middleware.SessionCookie) *UserHandler {
	return &UserHandler{users: users, sessions: sessions, cookie: cookie}
}

func (h *UserHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.RegisterPageName, view.Page{Title: "Register"})
}

// Register 注册后自动登录
func (h *UserHandler) Register(c *gin.Context) {
	var form CredentialsForm
	_ = c.ShouldBind(&form)

	username, err := h.users.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.renderFormError(c, view.RegisterPageName, view.Page{Title: "Register"}, err)
		return
	}

	if !h.startSession(c, username) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.LoginPageName, view.Page{Title: "Login", Next: c.Query("next")})
}

func (h *UserHandler) Login(c *gin.Context) {
	var form CredentialsForm
	_ = c.ShouldBind(&form)
	next := c.Query("next")

	username, err := h.users.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.renderFormError(c, view.LoginPageName, view.Page{Title: "Login", Next: next}, err)
		return
	}

	if !h.startSession(c, username) {
		return
	}
	c.Redirect(http.StatusFound, SafeNext(next))
}

// Logout works whether or not anyone is logged in.
func (h *UserHandler) Logout(c *gin.Context) {
	h.sessions.End(c.Request.Context(), h.cookie.Read(c))
	h.cookie.Clear(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) startSession(c *gin.Context, username string) bool {
	token, err := h.sessions.Start(c.Request.Context(), username)
	if err != nil {
		internalError(c, err)
		return false
	}
	h.cookie.Set(c, token, h.sessions.TTL())
	return true
}

func (h *UserHandler) renderFormError(c *gin.Context, page string, data view.Page, err error) {
	for target, msg := range formMessages {
		if errors.Is(err, target) {
			data.Error = msg
			c.HTML(http.StatusOK, page, data)
			return
		}
	}
	internalError(c, err)
}

// SafeNext keeps post-login redirects on this site: only absolute local
// paths are honoured, anything else falls back to the feed.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
