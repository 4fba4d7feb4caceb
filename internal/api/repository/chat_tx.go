package repository

import (
	"context"

	"gorm.io/gorm"
)

// ChatTx runs a function against transactional room and message repositories.
// The chat service uses it to make status transitions atomic: the previous-status
// read, the system messages and the room update commit or roll back together.
type ChatTx interface {
	Do(ctx context.Context, fn func(rooms RoomRepository, messages MessageRepository) error) error
}

type gormChatTx struct {
	db *gorm.DB
}

func NewChatTx(db *gorm.DB) ChatTx {
	return &gormChatTx{db: db}
}

func (t *gormChatTx) Do(ctx context.Context, fn func(rooms RoomRepository, messages MessageRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRoomRepository(tx), NewMessageRepository(tx))
	})
}
