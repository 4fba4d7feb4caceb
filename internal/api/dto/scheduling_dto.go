package dto

// CreateAppointmentRequest books a service appointment. UserID comes from the
// auth context when present; walk-ins book with phone only.
type CreateAppointmentRequest struct {
	ServiceID int64  `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	Time      string `json:"time" binding:"required,len=5"`
	Phone     string `json:"phone" binding:"required,min=8,max=20"`
	Vehicle   string `json:"vehicle" binding:"required,max=200"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentStatusRequest for admin status changes
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDENTE CONFIRMADO CONCLUIDO CANCELADO"`
}
