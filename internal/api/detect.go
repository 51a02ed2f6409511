package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookifyai/backend/internal/service"
)

// DetectHandler serves food detection on uploaded photos.
type DetectHandler struct {
	detector service.FoodDetector
}

func NewDetectHandler(detector service.FoodDetector) *DetectHandler {
	return &DetectHandler{detector: detector}
}

func (h *DetectHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/detect", h.DetectFoods)
}

// DetectFoods identifies food items in a base64-encoded JPEG. Data URL
// prefixes from client-side capture are stripped before processing.
func (h *DetectHandler) DetectFoods(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	image := strings.TrimSpace(req.Image)
	if idx := strings.Index(image, ","); idx != -1 && strings.HasPrefix(image, "data:") {
		image = image[idx+1:]
	}
	if image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image is required"})
		return
	}

	result := h.detector.Detect(c.Request.Context(), image)
	c.JSON(http.StatusOK, result)
}
