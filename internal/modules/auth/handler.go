package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler manages the session endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/connect", h.GetConnect)
	r.GET("/disconnect", h.GetDisconnect)
}

// GetConnect godoc
// @Summary Sign in and obtain a session token
// @Description Exchanges a Basic Authorization header for an opaque token valid 24h.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /connect [get]
func (h *Handler) GetConnect(c *gin.Context) {
	token, err := h.service.Connect(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			log.Printf("connect failed: %v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetDisconnect godoc
// @Summary Sign out
// @Description Revokes the session identified by the X-Token header.
// @Tags Auth
// @Success 204
// @Failure 401 {object} map[string]interface{}
// @Router /disconnect [get]
func (h *Handler) GetDisconnect(c *gin.Context) {
	if err := h.service.Disconnect(c.Request.Context(), c.GetHeader("X-Token")); err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			log.Printf("disconnect failed: %v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Status(http.StatusNoContent)
}
