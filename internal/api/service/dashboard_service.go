package service

import (
	"context"
	"math"
	"time"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardService computes admin-panel aggregates. Sums and counts go through
// raw SQL on the pgx pool; the recent-orders list reuses the GORM repository.
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetRecentOrders() (*dto.RecentOrdersResponse, error)
}

type dashboardService struct {
	pool      *pgxpool.Pool
	orderRepo repository.OrderRepository
}

func NewDashboardService(pool *pgxpool.Pool, orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{pool: pool, orderRepo: orderRepo}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var salesThisMonth, salesLastMonth float64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE created_at >= $1 AND status != $2`,
		thisMonth, models.OrderStatusCancelled,
	).Scan(&salesThisMonth)
	if err != nil {
		return nil, err
	}

	err = s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders
		 WHERE created_at >= $1 AND created_at < $2 AND status != $3`,
		lastMonth, thisMonth, models.OrderStatusCancelled,
	).Scan(&salesLastMonth)
	if err != nil {
		return nil, err
	}

	var totalOrders, ordersBeforeThisMonth, totalProducts, totalClients int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&totalOrders); err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE created_at < $1`, thisMonth,
	).Scan(&ordersBeforeThisMonth); err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&totalProducts); err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleClient,
	).Scan(&totalClients); err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		Sales: dto.StatBlock{
			Total:  salesThisMonth,
			Change: percentChange(salesLastMonth, salesThisMonth),
		},
		Orders: dto.StatBlock{
			Total:  float64(totalOrders),
			Change: percentChange(float64(ordersBeforeThisMonth), float64(totalOrders-ordersBeforeThisMonth)),
		},
		Products: dto.StatBlock{Total: float64(totalProducts)},
		Clients:  dto.StatBlock{Total: float64(totalClients)},
	}, nil
}

func (s *dashboardService) GetRecentOrders() (*dto.RecentOrdersResponse, error) {
	orders, err := s.orderRepo.FindRecent(10)
	if err != nil {
		return nil, err
	}
	return &dto.RecentOrdersResponse{Orders: orders}, nil
}

// percentChange rounds to one decimal place.
func percentChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		if newValue > 0 {
			return 100
		}
		return 0
	}
	return math.Round(((newValue-oldValue)/oldValue)*1000) / 10
}
