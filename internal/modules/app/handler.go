package app

import (
	"context"
	"log"
	"net/http"

	"filesmanager/internal/cache"

	"github.com/gin-gonic/gin"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Handler serves the monitoring endpoints.
type Handler struct {
	sessions cache.Store
	dbPing   func(ctx context.Context) error
	users    Counter
	files    Counter
}

func NewHandler(sessions cache.Store, dbPing func(ctx context.Context) error, users, files Counter) *Handler {
	return &Handler{sessions: sessions, dbPing: dbPing, users: users, files: files}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/status", h.GetStatus)
	r.GET("/stats", h.GetStats)
}

// GetStatus godoc
// @Summary Report adapter liveness
// @Tags App
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"redis": h.sessions.Ping(ctx) == nil,
		"db":    h.dbPing(ctx) == nil,
	})
}

// GetStats godoc
// @Summary Report user and file counts
// @Tags App
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		log.Printf("stats: user count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	files, err := h.files.Count(ctx)
	if err != nil {
		log.Printf("stats: file count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "files": files})
}
