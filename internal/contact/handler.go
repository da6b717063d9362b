package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/contact
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), in)
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation failed",
				"fields": ve.Fields,
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}
