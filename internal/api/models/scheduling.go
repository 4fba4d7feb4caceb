package models

import "time"

// Appointment status values (stored in Portuguese, same convention as orders).
const (
	AppointmentStatusPending   = "PENDENTE"
	AppointmentStatusConfirmed = "CONFIRMADO"
	AppointmentStatusDone      = "CONCLUIDO"
	AppointmentStatusCancelled = "CANCELADO"
)

var ValidAppointmentStatuses = []string{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusDone,
	AppointmentStatusCancelled,
}

type ServiceType struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (ServiceType) TableName() string {
	return "service_types"
}

type Service struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceTypeID int64     `gorm:"not null;index" json:"service_type_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `json:"price"`
	DurationMin   int       `json:"duration_min"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Associations
	ServiceType *ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

type Appointment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID int64     `gorm:"not null;index" json:"service_id"`
	UserID    *string   `gorm:"type:uuid;index" json:"user_id"` // optional: walk-ins book by phone only
	Date      time.Time `gorm:"not null" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null" json:"time"` // "HH:MM"
	Phone     string    `gorm:"not null" json:"phone"`
	Vehicle   string    `gorm:"not null" json:"vehicle"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Status    string    `gorm:"type:varchar(16);default:'PENDENTE';not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
