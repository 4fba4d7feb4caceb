package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSender marks messages generated by the room lifecycle itself
// (welcome, admin joined, closed, reopened).
const SystemSender = "system"

type Message struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	RoomID    string    `gorm:"type:uuid;not null;index" json:"roomId"`
	SenderID  string    `gorm:"not null" json:"senderId"` // customer id, admin id or "system"
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"` // sole ordering key within a room

	// Associations
	Room *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;" json:"room,omitempty"`
}

func (message *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	return
}

// IsSystem reports whether the message was generated by a lifecycle transition.
func (message *Message) IsSystem() bool {
	return message.SenderID == SystemSender
}

func (Message) TableName() string {
	return "messages"
}
