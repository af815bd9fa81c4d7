package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"jjblog/models"
	"jjblog/repository"
	"jjblog/service"
)

// CurrentUserKey is the gin context key the session binder stores the
// logged-in user under.
const CurrentUserKey = "current_user"

// SessionBinder resolves the session cookie to a user before every handler.
type SessionBinder struct {
	users      repository.UserRepository
	auth       service.AuthService
	cookieName string
}

func NewSessionBinder(users repository.UserRepository, auth service.AuthService, cookieName string) *SessionBinder {
	return &SessionBinder{users: users, auth: auth, cookieName: cookieName}
}

// Bind is deliberately lenient: a missing, expired, tampered or stale
// cookie (user since deleted) degrades to an anonymous request, never to
// an error.
func (b *SessionBinder) Bind() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(b.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		id, err := b.auth.ResolveSession(token)
		if err != nil {
			c.Next()
			return
		}
		user, err := b.users.GetByID(c.Request.Context(), id)
		if err != nil {
			c.Next()
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireLogin rejects anonymous requests before the handler body runs,
// redirecting to the login form with the original URL as the next target.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CurrentUserKey); !ok {
			c.Redirect(http.StatusFound, "/auth/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the bound user, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
