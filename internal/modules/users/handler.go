package users

import (
	"errors"
	"log"
	"net/http"

	"filesmanager/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/users", h.PostNew)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/users/me", h.GetMe)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNew godoc
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /users [post]
func (h *Handler) PostNew(c *gin.Context) {
	var req registerRequest
	// tolerate an empty body; the service reports the missing field
	_ = c.ShouldBindJSON(&req)

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingEmail), errors.Is(err, ErrMissingPassword), errors.Is(err, ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// GetMe godoc
// @Summary Return the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.GetMe(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("get me failed: %v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email})
}
