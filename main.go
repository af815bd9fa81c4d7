package main

import (
	"github.com/sirupsen/logrus"

	"jjblog/config"
	"jjblog/database"
	"jjblog/handler"
	"jjblog/middleware"
	"jjblog/pkg/metrics"
	"jjblog/repository"
	"jjblog/router"
	"jjblog/service"
)

func main() {
	cfg := config.LoadConfig()
	logger := logrus.New()

	if cfg.Session.CookieSecret == "" {
		logger.Fatal("COOKIE_SECRET must be set")
	}

	metrics.StartMetricsServer(cfg.Server.MetricsPort)
	logger.Infof("Prometheus metrics server started on :%s", cfg.Server.MetricsPort)

	db := database.InitDB(cfg)

	users := repository.NewUserRepository(db)
	articles := repository.NewArticleRepository(db)
	auth := service.NewAuthService(&cfg.Session)

	binder := middleware.NewSessionBinder(users, auth, cfg.Session.CookieName)
	blogHandler := handler.NewBlogHandler(articles, logger, cfg.Server.BlogTitle)
	composeHandler := handler.NewComposeHandler(articles, logger, cfg.Server.BlogTitle)
	authHandler := handler.NewAuthHandler(users, auth, cfg.Session, logger, cfg.Server.BlogTitle)

	r := router.Setup(cfg, binder, blogHandler, composeHandler, authHandler)

	logger.Infof("Blog listening on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
