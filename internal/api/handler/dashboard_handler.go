package handler

import (
	"net/http"

	"booster/internal/api/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(admin *gin.RouterGroup) {
	dashboard := admin.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/recent-orders", h.GetRecentOrders)
	}
}

// GetStats returns month-over-month aggregates for the admin dashboard
// GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRecentOrders returns the latest orders for the admin dashboard
// GET /dashboard/recent-orders
func (h *DashboardHandler) GetRecentOrders(c *gin.Context) {
	orders, err := h.dashboardService.GetRecentOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
