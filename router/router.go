package router

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"jjblog/config"
	"jjblog/handler"
	"jjblog/middleware"
	metricsgin "jjblog/pkg/metrics/gin"
)

func Setup(cfg *config.Config, binder *middleware.SessionBinder, blog *handler.BlogHandler, compose *handler.ComposeHandler, auth *handler.AuthHandler) *gin.Engine {
	r := gin.Default()
	r.Use(metricsgin.PrometheusMiddleware("jjblog"))
	r.LoadHTMLGlob(filepath.Join(cfg.Server.TemplateDir, "*.html"))
	r.Static("/static", cfg.Server.StaticDir)

	r.Use(binder.Bind())

	r.GET("/", blog.Home)
	r.GET("/entry/:slug", blog.Entry)
	r.GET("/auth/login", auth.ShowLogin)
	r.POST("/auth/login", auth.Login)

	authed := r.Group("/", middleware.RequireLogin())
	{
		authed.GET("/compose/:slug", compose.Show)
		authed.POST("/compose/:slug", compose.Submit)
		authed.GET("/manage", blog.Manage)
	}

	return r
}
