package repository

import (
	"context"

	"booster/internal/api/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for chat message data operations.
// Messages are append-only; there is no update or delete.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	// FindByRoom returns the room's messages ascending by creation time.
	FindByRoom(ctx context.Context, roomID string) ([]models.Message, error)
	// FindLatestByRoom returns the most recent message of the room, or
	// gorm.ErrRecordNotFound when the room has none.
	FindLatestByRoom(ctx context.Context, roomID string) (*models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByRoom(ctx context.Context, roomID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindLatestByRoom(ctx context.Context, roomID string) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}
