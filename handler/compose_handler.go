package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jjblog/models"
	"jjblog/pkg/metrics"
	"jjblog/repository"
)

// ComposeHandler creates and edits articles. Both routes sit behind the
// login guard.
type ComposeHandler struct {
	articles  repository.ArticleRepository
	logger    *logrus.Logger
	blogTitle string
}

func NewComposeHandler(articles repository.ArticleRepository, logger *logrus.Logger, blogTitle string) *ComposeHandler {
	return &ComposeHandler{articles: articles, logger: logger, blogTitle: blogTitle}
}

// Show renders the composer: empty for /compose/new, prefilled for an
// existing slug, and with an explicit notice when the slug matches
// nothing.
func (h *ComposeHandler) Show(c *gin.Context) {
	slug := c.Param("slug")
	data := pageData(c, h.blogTitle)
	data["Action"] = slug

	if slug == "new" {
		c.HTML(http.StatusOK, "compose.html", data)
		return
	}

	article, err := h.articles.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, repository.ErrNoResult) {
		data["NotFound"] = true
		c.HTML(http.StatusNotFound, "compose.html", data)
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("load entry for compose failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	data["Entry"] = article
	c.HTML(http.StatusOK, "compose.html", data)
}

// Submit upserts the article under the submitted slug. The form's slug
// field wins over the path parameter, so saving an edit under a new slug
// leaves the old document behind.
func (h *ComposeHandler) Submit(c *gin.Context) {
	title := c.PostForm("title")
	slug := c.PostForm("slug")
	markdown := c.PostForm("markdown")
	if title == "" || slug == "" || markdown == "" {
		c.String(http.StatusBadRequest, "title, slug and markdown are required")
		return
	}

	article := &models.Article{Slug: slug, Title: title, Markdown: markdown}
	if err := h.articles.Upsert(c.Request.Context(), article); err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("upsert article failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	metrics.ArticlesPublished.Inc()

	c.Redirect(http.StatusFound, "/entry/"+url.PathEscape(slug))
}
