package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room status lifecycle: waiting -> active -> closed, with reopen back to waiting.
const (
	RoomStatusWaiting = "waiting"
	RoomStatusActive  = "active"
	RoomStatusClosed  = "closed"
)

type Room struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	CustomerID string    `gorm:"not null;index" json:"customerId"`
	AdminID    *string   `gorm:"index" json:"adminId"` // nil while waiting; set when an admin engages
	Status     string    `gorm:"type:varchar(16);default:'waiting';not null;index" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (room *Room) BeforeCreate(tx *gorm.DB) (err error) {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	return
}

// IsOpen reports whether the room still accepts messages.
func (room *Room) IsOpen() bool {
	return room.Status == RoomStatusWaiting || room.Status == RoomStatusActive
}

func (Room) TableName() string {
	return "rooms"
}
