package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jjblog/config"
	"jjblog/pkg/metrics"
	"jjblog/repository"
	"jjblog/service"
)

// AuthHandler renders and processes the login form.
type AuthHandler struct {
	users     repository.UserRepository
	auth      service.AuthService
	session   config.SessionConfig
	logger    *logrus.Logger
	blogTitle string
}

func NewAuthHandler(users repository.UserRepository, auth service.AuthService, session config.SessionConfig, logger *logrus.Logger, blogTitle string) *AuthHandler {
	return &AuthHandler{users: users, auth: auth, session: session, logger: logger, blogTitle: blogTitle}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	data := pageData(c, h.blogTitle)
	data["Next"] = c.Query("next")
	c.HTML(http.StatusOK, "login.html", data)
}

// Login checks credentials and binds the session. Failures re-render the
// form with a message at 200; no cookie is set unless the password
// matches.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		data := pageData(c, h.blogTitle)
		data["Error"] = "email and password are required"
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if errors.Is(err, repository.ErrNoResult) {
		h.renderError(c, "email not exists")
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("login lookup failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if !h.auth.CheckPassword(user, password) {
		h.renderError(c, "incorrect password")
		return
	}

	token, err := h.auth.IssueSession(user.ID)
	if err != nil {
		h.logger.WithError(err).Error("issue session failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.SetCookie(h.session.CookieName, token, h.session.ExpireMinutes*60, "/", "", false, true)
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	next := c.Request.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) renderError(c *gin.Context, msg string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	data := pageData(c, h.blogTitle)
	data["Error"] = msg
	data["Next"] = c.Request.FormValue("next")
	c.HTML(http.StatusOK, "login.html", data)
}
