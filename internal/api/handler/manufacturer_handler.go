package handler

import (
	"errors"
	"net/http"
	"strconv"

	"booster/internal/api/dto"
	"booster/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ManufacturerHandler struct {
	manufacturerService service.ManufacturerService
}

func NewManufacturerHandler(manufacturerService service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{manufacturerService: manufacturerService}
}

func (h *ManufacturerHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/manufacturers", h.ListManufacturers)
	public.GET("/manufacturers/:id", h.GetManufacturer)
}

func (h *ManufacturerHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/manufacturers", h.CreateManufacturer)
	admin.PUT("/manufacturers/:id", h.UpdateManufacturer)
	admin.DELETE("/manufacturers/:id", h.DeleteManufacturer)
}

// GET /manufacturers
func (h *ManufacturerHandler) ListManufacturers(c *gin.Context) {
	manufacturers, err := h.manufacturerService.ListManufacturers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, manufacturers)
}

// GET /manufacturers/:id
func (h *ManufacturerHandler) GetManufacturer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manufacturer id"})
		return
	}

	manufacturer, err := h.manufacturerService.GetManufacturerByID(id)
	if err != nil {
		if errors.Is(err, service.ErrManufacturerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

// POST /manufacturers
func (h *ManufacturerHandler) CreateManufacturer(c *gin.Context) {
	var req dto.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	manufacturer, err := h.manufacturerService.CreateManufacturer(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, manufacturer)
}

// PUT /manufacturers/:id
func (h *ManufacturerHandler) UpdateManufacturer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manufacturer id"})
		return
	}

	var req dto.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	manufacturer, err := h.manufacturerService.UpdateManufacturer(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrManufacturerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

// DELETE /manufacturers/:id
func (h *ManufacturerHandler) DeleteManufacturer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manufacturer id"})
		return
	}

	if err := h.manufacturerService.DeleteManufacturer(id); err != nil {
		if errors.Is(err, service.ErrManufacturerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
