package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookifyai/backend/internal/service"
)

// ImageHandler serves AI food-image generation.
type ImageHandler struct {
	images service.ImageGenerator
}

func NewImageHandler(images service.ImageGenerator) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", h.GenerateImage)
}

// GenerateImage produces a hosted image URL for a recipe title.
func (h *ImageHandler) GenerateImage(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A recipe title is required"})
		return
	}

	imageURL, err := h.images.GenerateFoodImage(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}
