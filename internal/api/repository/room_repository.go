package repository

import (
	"context"
	"time"

	"booster/internal/api/models"

	"gorm.io/gorm"
)

// RoomRepository defines the interface for chat room data operations.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Save(ctx context.Context, room *models.Room) error
	// SaveAll persists every room in one transaction, one row update each,
	// so downstream change-data-capture sees individual writes.
	SaveAll(ctx context.Context, rooms []*models.Room) error
	FindByID(ctx context.Context, id string) (*models.Room, error)
	// FindLatestOpenByCustomer returns the most recently created waiting or
	// active room for the customer.
	FindLatestOpenByCustomer(ctx context.Context, customerID string) (*models.Room, error)
	FindOpen(ctx context.Context) ([]models.Room, error)
	FindFiltered(ctx context.Context, status, adminID string) ([]models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	FindOpenCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Room, error)
}

// roomRepository is the GORM implementation of RoomRepository.
type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) Save(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) SaveAll(ctx context.Context, rooms []*models.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, room := range rooms {
			if err := tx.Save(room).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindLatestOpenByCustomer(ctx context.Context, customerID string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status IN ?", customerID,
			[]string{models.RoomStatusWaiting, models.RoomStatusActive}).
		Order("created_at DESC").
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindOpen(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{models.RoomStatusWaiting, models.RoomStatusActive}).
		Order("created_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindFiltered(ctx context.Context, status, adminID string) ([]models.Room, error) {
	query := r.db.WithContext(ctx).Model(&models.Room{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if adminID != "" {
		query = query.Where("admin_id = ?", adminID)
	}

	var rooms []models.Room
	err := query.Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindOpenCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("status IN ? AND created_at < ?",
			[]string{models.RoomStatusWaiting, models.RoomStatusActive}, cutoff).
		Find(&rooms).Error
	return rooms, err
}
