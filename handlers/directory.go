package handlers

import (
	"net/http"
	"strconv"

	"salonq/models"
	"salonq/services/catalog"
	"salonq/services/salon"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the public salon directory used by customers picking a
// salon to check into.
type DirectoryHandler struct {
	Salons  salon.SalonService
	Catalog catalog.CatalogService
}

func NewDirectoryHandler(salons salon.SalonService, cat catalog.CatalogService) *DirectoryHandler {
	return &DirectoryHandler{Salons: salons, Catalog: cat}
}

// ListSalonsHandler handles GET /api/salons. Only approved salons are public.
func (h *DirectoryHandler) ListSalonsHandler(c *gin.Context) {
	salons, err := h.Salons.ListByStatus(models.SalonStatusApproved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, salons)
}

// NearbySalonsHandler handles GET /api/salons/nearby?lng=&lat=&radius=.
func (h *DirectoryHandler) NearbySalonsHandler(c *gin.Context) {
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	if errLng != nil || errLat != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng and lat query parameters are required"})
		return
	}
	radius, _ := strconv.ParseFloat(c.Query("radius"), 64)

	salons, err := h.Salons.FindNearby(lng, lat, radius)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, salons)
}

// GetSalonHandler handles GET /api/salons/:id.
func (h *DirectoryHandler) GetSalonHandler(c *gin.Context) {
	sal, err := h.Salons.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if sal.Status != models.SalonStatusApproved {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
		return
	}
	c.JSON(http.StatusOK, sal)
}

// SalonServicesHandler handles GET /api/salons/:id/services.
func (h *DirectoryHandler) SalonServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// SalonStaffHandler handles GET /api/salons/:id/staff.
func (h *DirectoryHandler) SalonStaffHandler(c *gin.Context) {
	staff, err := h.Catalog.ListStaff(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}
