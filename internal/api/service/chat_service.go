package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"booster/internal/api/models"
	"booster/internal/api/repository"
	"booster/internal/realtime"

	"gorm.io/gorm"
)

var (
	ErrRoomNotFound      = errors.New("chat room not found")
	ErrRoomClosed        = errors.New("cannot send messages to a closed room")
	ErrInvalidRoomStatus = errors.New("status must be active or closed")
	ErrEmptyMessage      = errors.New("message content cannot be empty")
)

// DefaultInactiveMinutes is the sweep threshold used when the caller does not
// supply one.
const DefaultInactiveMinutes = 30

// System message contents, kept in Portuguese for wire compatibility with the
// storefront and admin clients.
const (
	welcomeMessage  = "Em alguns momentos um administrador entrará em contato."
	reopenedMessage = "Conversa reaberta. Aguardando atendimento..."
)

// CleanupSummary reports the outcome of an inactive-room sweep.
type CleanupSummary struct {
	Cleaned int           `json:"cleaned"`
	Rooms   []models.Room `json:"rooms"`
}

// ChatService owns the chat room lifecycle: opening rooms, posting messages,
// admin status transitions and idle-room reclamation.
type ChatService interface {
	OpenRoom(ctx context.Context, customerID string) (*models.Room, error)
	PostMessage(ctx context.Context, roomID, senderID, content string) (*models.Message, error)
	ListMessages(ctx context.Context, roomID string) ([]models.Message, error)
	ListOpenRooms(ctx context.Context) ([]models.Room, error)
	ListRoomsFiltered(ctx context.Context, status, adminID string) ([]models.Room, error)
	ListAllRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID, status, adminID string) (*models.Room, error)
	ReopenRoom(ctx context.Context, roomID string) (*models.Room, error)
	CleanInactiveRooms(ctx context.Context, inactiveMinutes int) (*CleanupSummary, error)
}

type chatService struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
	tx          repository.ChatTx
	notifier    realtime.Publisher // optional, nil disables event publishing
	logger      *slog.Logger
}

func NewChatService(
	roomRepo repository.RoomRepository,
	messageRepo repository.MessageRepository,
	tx repository.ChatTx,
	notifier realtime.Publisher,
	logger *slog.Logger,
) ChatService {
	return &chatService{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		tx:          tx,
		notifier:    notifier,
		logger:      logger,
	}
}

// OpenRoom returns the customer's most recently created open room, or creates
// a new waiting room with a system welcome message. Idempotent re-entry: an
// existing open room is returned unchanged.
func (s *chatService) OpenRoom(ctx context.Context, customerID string) (*models.Room, error) {
	existing, err := s.roomRepo.FindLatestOpenByCustomer(ctx, customerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &models.Room{
		CustomerID: customerID,
		Status:     models.RoomStatusWaiting,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	welcome := &models.Message{
		RoomID:   room.ID,
		SenderID: models.SystemSender,
		Content:  welcomeMessage,
	}
	if err := s.messageRepo.Create(ctx, welcome); err != nil {
		return nil, err
	}

	s.logger.Info("chat room opened", "room_id", room.ID, "customer_id", customerID)
	s.publishRoom(ctx, room)
	s.publishMessage(ctx, welcome)

	return room, nil
}

// PostMessage appends a message to an open room.
func (s *chatService) PostMessage(ctx context.Context, roomID, senderID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if room.Status == models.RoomStatusClosed {
		return nil, ErrRoomClosed
	}

	message := &models.Message{
		RoomID:   roomID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.publishMessage(ctx, message)
	return message, nil
}

// ListMessages returns the room history ascending by creation time. An unknown
// room yields an empty slice rather than an error, so a client holding a stale
// room reference degrades gracefully.
func (s *chatService) ListMessages(ctx context.Context, roomID string) ([]models.Message, error) {
	return s.messageRepo.FindByRoom(ctx, roomID)
}

// ListOpenRooms returns waiting and active rooms, newest first. Used by admin
// consoles to find work.
func (s *chatService) ListOpenRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindOpen(ctx)
}

// ListRoomsFiltered constrains by status and/or admin; an empty filter value
// means "don't constrain on that dimension".
func (s *chatService) ListRoomsFiltered(ctx context.Context, status, adminID string) ([]models.Room, error) {
	return s.roomRepo.FindFiltered(ctx, status, adminID)
}

func (s *chatService) ListAllRooms(ctx context.Context) ([]models.Room, error) {
	return s.roomRepo.FindAll(ctx)
}

// UpdateRoomStatus transitions a room to active or closed, recording the acting
// admin. waiting->active emits a join message; any transition to closed emits a
// closure message. The read, the system messages and the room update run in one
// transaction so concurrent transitions cannot interleave.
func (s *chatService) UpdateRoomStatus(ctx context.Context, roomID, status, adminID string) (*models.Room, error) {
	if status != models.RoomStatusActive && status != models.RoomStatusClosed {
		return nil, ErrInvalidRoomStatus
	}

	var (
		updated *models.Room
		emitted []*models.Message
	)
	err := s.tx.Do(ctx, func(rooms repository.RoomRepository, messages repository.MessageRepository) error {
		room, err := rooms.FindByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		previousStatus := room.Status
		room.Status = status
		// The closer's identity overwrites any prior admin on purpose.
		room.AdminID = &adminID

		if previousStatus == models.RoomStatusWaiting && status == models.RoomStatusActive {
			joined := &models.Message{
				RoomID:   roomID,
				SenderID: models.SystemSender,
				Content:  fmt.Sprintf("%s entrou na conversa", adminID),
			}
			if err := messages.Create(ctx, joined); err != nil {
				return err
			}
			emitted = append(emitted, joined)
		}

		if status == models.RoomStatusClosed {
			closed := &models.Message{
				RoomID:   roomID,
				SenderID: models.SystemSender,
				Content:  fmt.Sprintf("O atendimento foi encerrado por %s. Obrigado pelo contato!", adminID),
			}
			if err := messages.Create(ctx, closed); err != nil {
				return err
			}
			emitted = append(emitted, closed)
		}

		if err := rooms.Save(ctx, room); err != nil {
			return err
		}

		s.logger.Info("chat room status updated",
			"room_id", roomID, "previous", previousStatus, "status", status, "admin_id", adminID)
		updated = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishRoom(ctx, updated)
	for _, message := range emitted {
		s.publishMessage(ctx, message)
	}
	return updated, nil
}

// ReopenRoom puts a room back to waiting and clears the assigned admin. There
// is no restriction on the prior status; reopening a waiting room just appends
// another system message.
func (s *chatService) ReopenRoom(ctx context.Context, roomID string) (*models.Room, error) {
	var (
		updated  *models.Room
		reopened *models.Message
	)
	err := s.tx.Do(ctx, func(rooms repository.RoomRepository, messages repository.MessageRepository) error {
		room, err := rooms.FindByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		room.Status = models.RoomStatusWaiting
		room.AdminID = nil

		reopened = &models.Message{
			RoomID:   roomID,
			SenderID: models.SystemSender,
			Content:  reopenedMessage,
		}
		if err := messages.Create(ctx, reopened); err != nil {
			return err
		}

		if err := rooms.Save(ctx, room); err != nil {
			return err
		}

		s.logger.Info("chat room reopened", "room_id", roomID)
		updated = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishRoom(ctx, updated)
	s.publishMessage(ctx, reopened)
	return updated, nil
}

// CleanInactiveRooms closes open rooms that are both old and quiet. The filter
// is two-stage on purpose: rooms created after the cutoff are never candidates
// even if they have no messages, and an old room with a recent message stays
// open.
func (s *chatService) CleanInactiveRooms(ctx context.Context, inactiveMinutes int) (*CleanupSummary, error) {
	if inactiveMinutes <= 0 {
		inactiveMinutes = DefaultInactiveMinutes
	}
	cutoff := time.Now().Add(-time.Duration(inactiveMinutes) * time.Minute)

	candidates, err := s.roomRepo.FindOpenCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	var toClose []*models.Room
	for i := range candidates {
		room := &candidates[i]

		last, err := s.messageRepo.FindLatestByRoom(ctx, room.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if last == nil || last.CreatedAt.Before(cutoff) {
			room.Status = models.RoomStatusClosed
			toClose = append(toClose, room)
		}
	}

	if err := s.roomRepo.SaveAll(ctx, toClose); err != nil {
		return nil, err
	}

	summary := &CleanupSummary{Cleaned: len(toClose), Rooms: make([]models.Room, 0, len(toClose))}
	for _, room := range toClose {
		summary.Rooms = append(summary.Rooms, *room)
		s.publishRoom(ctx, room)
	}

	s.logger.Info("inactive chat rooms cleaned", "cleaned", summary.Cleaned, "inactive_minutes", inactiveMinutes)
	return summary, nil
}

func (s *chatService) publishRoom(ctx context.Context, room *models.Room) {
	if s.notifier != nil {
		s.notifier.RoomUpdated(ctx, room)
	}
}

func (s *chatService) publishMessage(ctx context.Context, message *models.Message) {
	if s.notifier != nil {
		s.notifier.MessageCreated(ctx, message)
	}
}
