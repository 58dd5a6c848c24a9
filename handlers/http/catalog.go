package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-server/repositories"
)

// CatalogHandler manages the service and time-slot allow-lists backing the
// booking form and the admin settings screen.
type CatalogHandler struct {
	catalog repositories.CatalogRepository
}

func NewCatalogHandler(catalog repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type labelRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetServices handles GET /api/v1/services
func (h *CatalogHandler) GetServices(c *gin.Context) {
	services, err := h.catalog.Services()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// AddService handles POST /api/v1/services
func (h *CatalogHandler) AddService(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.catalog.AddService(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add service"})
		return
	}
	h.GetServices(c)
}

// RemoveService handles DELETE /api/v1/services/:name
func (h *CatalogHandler) RemoveService(c *gin.Context) {
	if err := h.catalog.RemoveService(c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove service"})
		return
	}
	h.GetServices(c)
}

// GetTimeSlots handles GET /api/v1/time-slots
func (h *CatalogHandler) GetTimeSlots(c *gin.Context) {
	slots, err := h.catalog.TimeSlots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get time slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeSlots": slots})
}

// AddTimeSlot handles POST /api/v1/time-slots
func (h *CatalogHandler) AddTimeSlot(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.catalog.AddTimeSlot(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add time slot"})
		return
	}
	h.GetTimeSlots(c)
}

// RemoveTimeSlot handles DELETE /api/v1/time-slots/:name
func (h *CatalogHandler) RemoveTimeSlot(c *gin.Context) {
	if err := h.catalog.RemoveTimeSlot(c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove time slot"})
		return
	}
	h.GetTimeSlots(c)
}
