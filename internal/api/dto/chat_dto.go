package dto

// Field names are camelCase to match the storefront and admin clients.

// OpenRoomRequest opens (or returns) the customer's chat room.
type OpenRoomRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// PostMessageRequest posts a message into a room.
type PostMessageRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	SenderID string `json:"senderId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// UpdateRoomStatusRequest transitions a room to active or closed.
type UpdateRoomStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=active closed"`
	AdminID string `json:"adminId" binding:"required"`
}

// CleanInactiveRequest triggers the idle-room sweep. A missing threshold
// defaults to 30 minutes.
type CleanInactiveRequest struct {
	InactiveMinutes *int `json:"inactiveMinutes"`
}
