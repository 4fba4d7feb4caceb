package service

import (
	"errors"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("only pending orders can be cancelled")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

type OrderService interface {
	CreateOrder(userID string, req *dto.CreateOrderRequest) (*models.Order, error)
	GetOrder(id int64, userID string) (*models.Order, error)
	ListMyOrders(userID string) ([]models.Order, error)
	ListAllOrders() ([]models.Order, error)
	CancelOrder(id int64, userID string) (*models.Order, error)
	UpdateOrderStatus(id int64, status string) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartSvc   CartService
}

func NewOrderService(orderRepo repository.OrderRepository, cartSvc CartService) OrderService {
	return &orderService{orderRepo: orderRepo, cartSvc: cartSvc}
}

// CreateOrder places an order from the submitted items. The total is computed
// server-side and the user's cart is cleared afterwards.
func (s *orderService) CreateOrder(userID string, req *dto.CreateOrderRequest) (*models.Order, error) {
	total := 0.0
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		total += item.UnitPrice * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order := &models.Order{
		UserID: userID,
		Total:  total,
		Status: models.OrderStatusPending,
		Items:  items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Clear cart after placing the order; a failure here must not undo the order
	if err := s.cartSvc.ClearCart(userID); err != nil {
		return order, nil
	}

	return order, nil
}

func (s *orderService) GetOrder(id int64, userID string) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListMyOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *orderService) ListAllOrders() ([]models.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) CancelOrder(id int64, userID string) (*models.Order, error) {
	order, err := s.GetOrder(id, userID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotCancellable
	}

	order.Status = models.OrderStatusCancelled
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(id int64, status string) (*models.Order, error) {
	valid := false
	for _, candidate := range models.ValidOrderStatuses {
		if status == candidate {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
