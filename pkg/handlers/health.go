package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DataRoot  string    `json:"dataRoot"`
}

type HealthHandler struct {
	serviceName string
	version     string
	dataRoot    string
}

func NewHealthHandler(serviceName, version, dataRoot string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		dataRoot:    dataRoot,
	}
}

// HealthCheck reports "degraded" when the data root is not a readable
// directory; the process itself is still serving.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status, dataRoot := "healthy", "up"
	if info, err := os.Stat(h.dataRoot); err != nil || !info.IsDir() {
		status, dataRoot = "degraded", "down"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DataRoot:  dataRoot,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
