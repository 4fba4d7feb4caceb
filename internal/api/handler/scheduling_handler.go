package handler

import (
	"errors"
	"net/http"
	"strconv"

	"booster/internal/api/dto"
	"booster/internal/api/middleware"
	"booster/internal/api/service"

	"github.com/gin-gonic/gin"
)

type SchedulingHandler struct {
	schedulingService service.SchedulingService
}

func NewSchedulingHandler(schedulingService service.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{schedulingService: schedulingService}
}

func (h *SchedulingHandler) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/services", h.ListServices)
	public.GET("/services/:id", h.GetService)
	public.GET("/service-types", h.ListServiceTypes)

	authed.POST("/appointments", h.CreateAppointment)
	authed.GET("/appointments", h.ListMyAppointments)

	admin.GET("/appointments", h.ListAllAppointments)
	admin.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
}

// GET /services
func (h *SchedulingHandler) ListServices(c *gin.Context) {
	services, err := h.schedulingService.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GET /services/:id
func (h *SchedulingHandler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	svc, err := h.schedulingService.GetService(id)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GET /service-types
func (h *SchedulingHandler) ListServiceTypes(c *gin.Context) {
	types, err := h.schedulingService.ListServiceTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

// POST /appointments
func (h *SchedulingHandler) CreateAppointment(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *string
	if id := c.GetString(middleware.ContextUserID); id != "" {
		userID = &id
	}

	appointment, err := h.schedulingService.CreateAppointment(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidAppointmentDay):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GET /appointments
func (h *SchedulingHandler) ListMyAppointments(c *gin.Context) {
	appointments, err := h.schedulingService.ListMyAppointments(c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GET /appointments (admin group)
func (h *SchedulingHandler) ListAllAppointments(c *gin.Context) {
	appointments, err := h.schedulingService.ListAllAppointments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// PATCH /appointments/:id/status
func (h *SchedulingHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.schedulingService.UpdateAppointmentStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointment)
}
