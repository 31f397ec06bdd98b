package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"minifeed/internal/service"
	"minifeed/pkg/logging"
)

const ContextUsernameKey = "username"

// SessionResolver maps a session token to the user it belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// SessionCookie describes the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) Read(c *gin.Context) string {
	token, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return token
}

func (sc SessionCookie) Set(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, int(ttl/time.Second), "/", "", sc.Secure, true)
}

func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// Identity resolves the session cookie on every request and stores the
// username in the context. A token that no longer resolves is cleared and
// the request continues anonymously.
func Identity(sessions SessionResolver, cookie SessionCookie) gin.HandlerFunc {
	log := logging.WithComponent("auth")
	return func(c *gin.Context) {
		token := cookie.Read(c)
		if token == "" {
			c.Next()
			return
		}

		username, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				cookie.Clear(c)
			} else {
				// Transient failure: serve anonymously but keep the cookie.
				log.Error("resolve session", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(ContextUsernameKey, username)
		c.Next()
	}
}

// CurrentUser returns the username resolved by Identity.
func CurrentUser(c *gin.Context) (string, bool) {
	username := c.GetString(ContextUsernameKey)
	return username, username != ""
}

// RequireLogin sends anonymous requests to the login page, carrying the
// requested path so login can return there.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
	}
}
