package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	renderhtml "github.com/yuin/goldmark/renderer/html"

	"jjblog/repository"
)

// BlogHandler serves the public pages and the admin listing.
type BlogHandler struct {
	articles  repository.ArticleRepository
	markdown  goldmark.Markdown
	logger    *logrus.Logger
	blogTitle string
}

func NewBlogHandler(articles repository.ArticleRepository, logger *logrus.Logger, blogTitle string) *BlogHandler {
	return &BlogHandler{
		articles: articles,
		// the blog owner authors every entry, raw HTML passes through
		markdown:  goldmark.New(goldmark.WithRendererOptions(renderhtml.WithUnsafe())),
		logger:    logger,
		blogTitle: blogTitle,
	}
}

// Home lists every article in the store's natural order. An empty
// collection renders 404 rather than an empty page.
func (h *BlogHandler) Home(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list articles failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if len(articles) == 0 {
		renderNotFound(c, h.blogTitle)
		return
	}
	data := pageData(c, h.blogTitle)
	data["Articles"] = articles
	c.HTML(http.StatusOK, "home.html", data)
}

// Entry renders one article's markdown as HTML.
func (h *BlogHandler) Entry(c *gin.Context) {
	slug := c.Param("slug")
	article, err := h.articles.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, repository.ErrNoResult) {
		renderNotFound(c, h.blogTitle)
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("load entry failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(article.Markdown), &buf); err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("render markdown failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	data := pageData(c, h.blogTitle)
	data["Entry"] = article
	data["Body"] = template.HTML(buf.String())
	c.HTML(http.StatusOK, "entry.html", data)
}

// Manage lists every article for editing. Query failures map to 404,
// matching the public surface.
func (h *BlogHandler) Manage(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list articles for manage failed")
		renderNotFound(c, h.blogTitle)
		return
	}
	data := pageData(c, h.blogTitle)
	data["Articles"] = articles
	c.HTML(http.StatusOK, "manage.html", data)
}
