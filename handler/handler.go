package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jjblog/middleware"
)

// pageData seeds the template data every page needs: the blog title and
// the bound user for the nav header.
func pageData(c *gin.Context, blogTitle string) gin.H {
	data := gin.H{"BlogTitle": blogTitle}
	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
	}
	return data
}

func renderNotFound(c *gin.Context, blogTitle string) {
	c.HTML(http.StatusNotFound, "notfound.html", pageData(c, blogTitle))
}
