package service

import (
	"errors"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService interface {
	GetCart(userID string) (*dto.CartResponse, error)
	AddToCart(userID string, req *dto.AddToCartRequest) (*dto.CartResponse, error)
	UpdateCartItem(userID string, itemID int64, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveCartItem(userID string, itemID int64) (*dto.CartResponse, error)
	ClearCart(userID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// findOrCreateCart returns the user's cart, creating an empty one on first use.
func (s *cartService) findOrCreateCart(userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &models.Cart{UserID: userID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) GetCart(userID string) (*dto.CartResponse, error) {
	cart, err := s.findOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewCartResponse(cart), nil
}

func (s *cartService) AddToCart(userID string, req *dto.AddToCartRequest) (*dto.CartResponse, error) {
	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.findOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	// Merge quantity when the product is already in the cart
	var existing *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			existing = &cart.Items[i]
			break
		}
	}

	if existing != nil {
		existing.Quantity += req.Quantity
		if err := s.cartRepo.UpdateItem(existing); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			UnitPrice: product.UnitPrice, // snapshot the price at add time
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			return nil, err
		}
	}

	return s.GetCart(userID)
}

func (s *cartService) UpdateCartItem(userID string, itemID int64, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	cart, err := s.findOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := findItem(cart, itemID)
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	item.Quantity = req.Quantity
	if err := s.cartRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	return s.GetCart(userID)
}

func (s *cartService) RemoveCartItem(userID string, itemID int64) (*dto.CartResponse, error) {
	cart, err := s.findOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := findItem(cart, itemID)
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}

	return s.GetCart(userID)
}

func (s *cartService) ClearCart(userID string) error {
	cart, err := s.findOrCreateCart(userID)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return nil
	}
	return s.cartRepo.DeleteItemsByCart(cart.ID)
}

func findItem(cart *models.Cart, itemID int64) *models.CartItem {
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return &cart.Items[i]
		}
	}
	return nil
}
