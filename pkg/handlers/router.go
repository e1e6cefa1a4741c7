package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	glog "github.com/goliatone/go-logger/glog"

	"myblog/pkg/services"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Store          *services.BlogStore
	Logger         glog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID(dep.Logger))
	r.Use(CORS())
	if dep.RateLimitRPS > 0 {
		r.Use(RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	NewHealthHandler(dep.ServiceName, dep.Version, dep.Store.DataRoot()).RegisterRoutes(r)
	NewBlogHandler(dep.Store, dep.Logger).RegisterRoutes(r)

	r.Static(strings.TrimSuffix(services.AssetURLPrefix, "/"), dep.Store.AssetsDir())

	return r
}
