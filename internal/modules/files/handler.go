package files

import (
	"errors"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"filesmanager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handler exposes the hierarchy endpoints. Downloads sit outside the auth
// middleware because public files are served to anonymous callers.
type Handler struct {
	service  *Service
	resolver middleware.TokenResolver
}

func NewHandler(service *Service, resolver middleware.TokenResolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/files", h.PostUpload)
	r.GET("/files", h.GetIndex)
	r.GET("/files/:id", h.GetShow)
	r.PUT("/files/:id/publish", h.PutPublish)
	r.PUT("/files/:id/unpublish", h.PutUnpublish)
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/files/:id/data", h.GetFile)
}

// PostUpload godoc
// @Summary Create a folder or upload a file
// @Description Folders are records only; files and images carry base64 data. Image uploads queue thumbnail generation.
// @Tags Files
// @Accept json
// @Produce json
// @Success 201 {object} NodeDescriptor
// @Failure 400,401 {object} map[string]interface{}
// @Router /files [post]
func (h *Handler) PostUpload(c *gin.Context) {
	var req UploadRequest
	_ = c.ShouldBindJSON(&req)

	descriptor, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName),
			errors.Is(err, ErrMissingType),
			errors.Is(err, ErrMissingData),
			errors.Is(err, ErrParentNotFound),
			errors.Is(err, ErrParentNotFolder):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, descriptor)
}

// GetShow godoc
// @Summary Fetch one of the caller's nodes
// @Tags Files
// @Produce json
// @Success 200 {object} NodeDescriptor
// @Failure 401,404 {object} map[string]interface{}
// @Router /files/{id} [get]
func (h *Handler) GetShow(c *gin.Context) {
	descriptor, err := h.service.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, descriptor)
}

// GetIndex godoc
// @Summary List the caller's nodes
// @Description Optional parentId filter; fixed pages of 20, most recent first.
// @Tags Files
// @Produce json
// @Success 200 {array} NodeDescriptor
// @Failure 401 {object} map[string]interface{}
// @Router /files [get]
func (h *Handler) GetIndex(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 0
	}

	descriptors, err := h.service.List(c.Request.Context(), middleware.UserID(c), c.Query("parentId"), page)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, descriptors)
}

// PutPublish godoc
// @Summary Make a node public
// @Tags Files
// @Produce json
// @Success 200 {object} NodeDescriptor
// @Failure 401,404 {object} map[string]interface{}
// @Router /files/{id}/publish [put]
func (h *Handler) PutPublish(c *gin.Context) {
	h.setVisibility(c, true)
}

// PutUnpublish godoc
// @Summary Make a node private
// @Tags Files
// @Produce json
// @Success 200 {object} NodeDescriptor
// @Failure 401,404 {object} map[string]interface{}
// @Router /files/{id}/unpublish [put]
func (h *Handler) PutUnpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *Handler) setVisibility(c *gin.Context, public bool) {
	descriptor, err := h.service.SetPublic(c.Request.Context(), middleware.UserID(c), c.Param("id"), public)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, descriptor)
}

// GetFile godoc
// @Summary Download file content
// @Description Public files need no token. Private files require the owner's token; anything else is Not found. size=500|250|100 selects a thumbnail.
// @Tags Files
// @Produce octet-stream
// @Success 200 {file} binary
// @Failure 400,404 {object} map[string]interface{}
// @Router /files/{id}/data [get]
func (h *Handler) GetFile(c *gin.Context) {
	// optional identity: resolution failures just mean an anonymous caller
	requesterID, _ := h.resolver.Resolve(c.Request.Context(), c.GetHeader("X-Token"))

	data, name, err := h.service.ReadContent(c.Request.Context(), requesterID, c.Param("id"), c.Query("size"))
	if err != nil {
		if errors.Is(err, ErrFolderNoContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.renderError(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	log.Printf("files request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
