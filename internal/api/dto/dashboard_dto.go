package dto

import "booster/internal/api/models"

// StatBlock is one dashboard figure with its month-over-month change.
type StatBlock struct {
	Total  float64 `json:"total"`
	Change float64 `json:"change"`
}

// DashboardStatsResponse is the admin dashboard summary.
type DashboardStatsResponse struct {
	Sales    StatBlock `json:"sales"`
	Orders   StatBlock `json:"orders"`
	Products StatBlock `json:"products"`
	Clients  StatBlock `json:"clients"`
}

// RecentOrdersResponse wraps the latest orders list.
type RecentOrdersResponse struct {
	Orders []models.Order `json:"orders"`
}
