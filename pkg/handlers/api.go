package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	glog "github.com/goliatone/go-logger/glog"

	"myblog/pkg/services"
)

// BlogHandler exposes the profile and articles as read-only JSON.
type BlogHandler struct {
	store  *services.BlogStore
	logger glog.Logger
}

func NewBlogHandler(store *services.BlogStore, logger glog.Logger) *BlogHandler {
	return &BlogHandler{store: store, logger: logger}
}

func (h *BlogHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/profile", h.GetProfile)
	api.GET("/articles", h.ListArticles)
	api.GET("/articles/:id", h.GetArticle)
}

func (h *BlogHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.Profile()
	if err != nil {
		h.logger.Error("get profile failed", "request_id", c.GetString(requestIDKey), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *BlogHandler) ListArticles(c *gin.Context) {
	summaries, err := h.store.ArticleSummaries()
	if err != nil {
		h.logger.Error("list articles failed", "request_id", c.GetString(requestIDKey), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetArticle returns one article. With ?render=html the body is also
// rendered to HTML in contentHtml.
func (h *BlogHandler) GetArticle(c *gin.Context) {
	detail, found, err := h.store.ArticleByID(c.Param("id"))
	if err != nil {
		h.logger.Error("get article failed", "request_id", c.GetString(requestIDKey), "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	if c.Query("render") == "html" {
		rendered, err := services.RenderHTML(detail.Content)
		if err != nil {
			h.logger.Error("render article failed", "id", detail.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render article"})
			return
		}
		detail.ContentHTML = rendered
	}
	c.JSON(http.StatusOK, detail)
}
