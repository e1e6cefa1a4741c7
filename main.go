package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"myblog/pkg/config"
	"myblog/pkg/handlers"
	"myblog/pkg/logging"
	"myblog/pkg/services"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	root, err := logging.New(config.LogLevel, config.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := []services.Option{services.WithLogger(logging.Named(root, "blog.store"))}
	if config.ArticleCache {
		opts = append(opts, services.WithArticleCache(services.NewArticleCache()))
	}
	store, err := services.NewBlogStore(config.DataPath, config.BaseURL, opts...)
	if err != nil {
		root.Fatal("blog store init failed", "error", err)
	}

	r := handlers.BuildRouter(handlers.RouterDeps{
		ServiceName:    "myblog",
		Version:        config.AppVersion,
		Store:          store,
		Logger:         logging.Named(root, "blog.http"),
		RateLimitRPS:   config.RateLimitRPS,
		RateLimitBurst: config.RateLimitBurst,
	})

	root.Info("serving blog", "data_root", store.DataRoot(), "port", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		root.Fatal("server stopped", "error", err)
	}
}
