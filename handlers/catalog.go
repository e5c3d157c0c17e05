package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"salonq/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the salon admin's service and staff management. Create
// and update accept multipart form data so an image can ride along with the
// fields; the image itself is optional.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// saveUploadedImage stashes the optional "image" form file in a temp path for
// the storage service to pick up. Returns "" when no file was sent.
func saveUploadedImage(c *gin.Context) (string, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", func() {}, nil
	}
	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", func() {}, err
	}
	return tempFilePath, func() { os.Remove(tempFilePath) }, nil
}

func serviceInputFromForm(c *gin.Context) (catalog.ServiceInput, bool) {
	price, errPrice := strconv.ParseFloat(c.PostForm("price"), 64)
	duration, errDur := strconv.Atoi(c.PostForm("durationMinutes"))
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" || errPrice != nil || errDur != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and durationMinutes are required"})
		return catalog.ServiceInput{}, false
	}
	return catalog.ServiceInput{
		Name:            name,
		Price:           price,
		DurationMinutes: duration,
		Category:        c.PostForm("category"),
	}, true
}

// CreateServiceHandler handles POST /api/salon/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	in, ok := serviceInputFromForm(c)
	if !ok {
		return
	}
	imagePath, cleanup, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image", "detail": err.Error()})
		return
	}
	defer cleanup()
	in.ImagePath = imagePath

	svc, err := h.Service.CreateService(salonID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/salon/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	in, ok := serviceInputFromForm(c)
	if !ok {
		return
	}
	imagePath, cleanup, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image", "detail": err.Error()})
		return
	}
	defer cleanup()
	in.ImagePath = imagePath

	svc, err := h.Service.UpdateService(salonID, c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/salon/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	if err := h.Service.DeleteService(salonID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListMyServicesHandler handles GET /api/salon/services.
func (h *CatalogHandler) ListMyServicesHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	services, err := h.Service.ListServices(salonID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateStaffHandler handles POST /api/salon/staff.
func (h *CatalogHandler) CreateStaffHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	imagePath, cleanup, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image", "detail": err.Error()})
		return
	}
	defer cleanup()

	st, err := h.Service.CreateStaff(salonID, catalog.StaffInput{
		Name:      name,
		Specialty: c.PostForm("specialty"),
		ImagePath: imagePath,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// UpdateStaffHandler handles PUT /api/salon/staff/:id.
func (h *CatalogHandler) UpdateStaffHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	imagePath, cleanup, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image", "detail": err.Error()})
		return
	}
	defer cleanup()

	st, err := h.Service.UpdateStaff(salonID, c.Param("id"), catalog.StaffInput{
		Name:      name,
		Specialty: c.PostForm("specialty"),
		ImagePath: imagePath,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeleteStaffHandler handles DELETE /api/salon/staff/:id.
func (h *CatalogHandler) DeleteStaffHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	if err := h.Service.DeleteStaff(salonID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}

// ListMyStaffHandler handles GET /api/salon/staff.
func (h *CatalogHandler) ListMyStaffHandler(c *gin.Context) {
	salonID, ok := salonIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No salon linked to this account"})
		return
	}
	staff, err := h.Service.ListStaff(salonID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}
