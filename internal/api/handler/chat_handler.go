package handler

import (
	"errors"
	"io"
	"net/http"

	"booster/internal/api/dto"
	"booster/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService            service.ChatService
	defaultInactiveMinutes int
}

func NewChatHandler(chatService service.ChatService, defaultInactiveMinutes int) *ChatHandler {
	if defaultInactiveMinutes <= 0 {
		defaultInactiveMinutes = service.DefaultInactiveMinutes
	}
	return &ChatHandler{
		chatService:            chatService,
		defaultInactiveMinutes: defaultInactiveMinutes,
	}
}

// RegisterRoutes registers chat routes. Routes with fixed segments must be
// registered before the :roomId wildcard routes, otherwise a path like
// /chat/rooms/waiting would match :roomId = "waiting".
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.POST("/rooms", h.OpenRoom)
		chat.POST("/messages", h.PostMessage)

		// Fixed-segment routes first
		chat.GET("/rooms/waiting", h.ListOpenRooms)
		chat.GET("/rooms/filter", h.ListRoomsFiltered)
		chat.GET("/rooms/all", h.ListAllRooms)
		chat.POST("/rooms/clean-inactive", h.CleanInactiveRooms)

		// Wildcard routes last
		chat.GET("/rooms/:roomId/messages", h.ListMessages)
		chat.PATCH("/rooms/:roomId/reopen", h.ReopenRoom)
		chat.PATCH("/rooms/:roomId/status", h.UpdateRoomStatus)
	}
}

// OpenRoom opens or returns the customer's chat room
// POST /chat/rooms
func (h *ChatHandler) OpenRoom(c *gin.Context) {
	var req dto.OpenRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.chatService.OpenRoom(c.Request.Context(), req.CustomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// PostMessage posts a message into a room
// POST /chat/messages
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.chatService.PostMessage(c.Request.Context(), req.RoomID, req.SenderID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRoomClosed), errors.Is(err, service.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages returns the room history ascending by creation time
// GET /chat/rooms/:roomId/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListOpenRooms returns waiting and active rooms for admin consoles
// GET /chat/rooms/waiting
func (h *ChatHandler) ListOpenRooms(c *gin.Context) {
	rooms, err := h.chatService.ListOpenRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ListRoomsFiltered filters rooms by status and/or admin
// GET /chat/rooms/filter?status=&adminId=
func (h *ChatHandler) ListRoomsFiltered(c *gin.Context) {
	rooms, err := h.chatService.ListRoomsFiltered(c.Request.Context(), c.Query("status"), c.Query("adminId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ListAllRooms returns every room, newest first
// GET /chat/rooms/all
func (h *ChatHandler) ListAllRooms(c *gin.Context) {
	rooms, err := h.chatService.ListAllRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// CleanInactiveRooms closes rooms that are both old and quiet
// POST /chat/rooms/clean-inactive
func (h *ChatHandler) CleanInactiveRooms(c *gin.Context) {
	// An empty body means "use the default threshold".
	var req dto.CleanInactiveRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	minutes := h.defaultInactiveMinutes
	if req.InactiveMinutes != nil && *req.InactiveMinutes > 0 {
		minutes = *req.InactiveMinutes
	}

	summary, err := h.chatService.CleanInactiveRooms(c.Request.Context(), minutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ReopenRoom puts a room back to waiting
// PATCH /chat/rooms/:roomId/reopen
func (h *ChatHandler) ReopenRoom(c *gin.Context) {
	room, err := h.chatService.ReopenRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoomStatus transitions a room to active or closed
// PATCH /chat/rooms/:roomId/status
func (h *ChatHandler) UpdateRoomStatus(c *gin.Context) {
	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.chatService.UpdateRoomStatus(c.Request.Context(), c.Param("roomId"), req.Status, req.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidRoomStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, room)
}
