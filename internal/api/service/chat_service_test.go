package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booster/internal/api/models"
	"booster/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockRoomRepository mocks the RoomRepository interface
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Save(ctx context.Context, room *models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) SaveAll(ctx context.Context, rooms []*models.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindLatestOpenByCustomer(ctx context.Context, customerID string) (*models.Room, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindOpen(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindFiltered(ctx context.Context, status, adminID string) ([]models.Room, error) {
	args := m.Called(ctx, status, adminID)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAll(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindOpenCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Room, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]models.Room), args.Error(1)
}

// MockMessageRepository mocks the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByRoom(ctx context.Context, roomID string) ([]models.Message, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) FindLatestByRoom(ctx context.Context, roomID string) (*models.Message, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

// passthroughTx runs the transaction function directly against the mocks, so
// expectations set on them cover the transactional path too.
type passthroughTx struct {
	rooms    repository.RoomRepository
	messages repository.MessageRepository
}

func (t *passthroughTx) Do(ctx context.Context, fn func(rooms repository.RoomRepository, messages repository.MessageRepository) error) error {
	return fn(t.rooms, t.messages)
}

func newTestChatService(roomRepo *MockRoomRepository, messageRepo *MockMessageRepository) ChatService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := &passthroughTx{rooms: roomRepo, messages: messageRepo}
	return NewChatService(roomRepo, messageRepo, tx, nil, logger)
}

func TestOpenRoom_CreatesWaitingRoomWithWelcome(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindLatestOpenByCustomer", ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
	roomRepo.On("Create", ctx, mock.MatchedBy(func(room *models.Room) bool {
		return room.CustomerID == "alice" && room.Status == models.RoomStatusWaiting
	})).Return(nil)
	messageRepo.On("Create", ctx, mock.MatchedBy(func(msg *models.Message) bool {
		return msg.SenderID == models.SystemSender &&
			msg.Content == "Em alguns momentos um administrador entrará em contato."
	})).Return(nil)

	room, err := svc.OpenRoom(ctx, "alice")

	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusWaiting, room.Status)
	assert.Equal(t, "alice", room.CustomerID)
	assert.Nil(t, room.AdminID)
	roomRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestOpenRoom_ReturnsExistingOpenRoom(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	existing := &models.Room{ID: "room-1", CustomerID: "alice", Status: models.RoomStatusActive}
	roomRepo.On("FindLatestOpenByCustomer", ctx, "alice").Return(existing, nil)

	room, err := svc.OpenRoom(ctx, "alice")

	assert.NoError(t, err)
	assert.Equal(t, existing, room)
	roomRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostMessage_Success(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", Status: models.RoomStatusActive}, nil)
	messageRepo.On("Create", ctx, mock.MatchedBy(func(msg *models.Message) bool {
		return msg.RoomID == "room-1" && msg.SenderID == "alice" && msg.Content == "hello"
	})).Return(nil)

	message, err := svc.PostMessage(ctx, "room-1", "alice", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "hello", message.Content)
	messageRepo.AssertExpectations(t)
}

func TestPostMessage_ClosedRoom(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", Status: models.RoomStatusClosed}, nil)

	_, err := svc.PostMessage(ctx, "room-1", "alice", "hello")

	assert.ErrorIs(t, err, ErrRoomClosed)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostMessage_UnknownRoom(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.PostMessage(ctx, "missing", "alice", "hello")

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestPostMessage_EmptyContent(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)

	_, err := svc.PostMessage(context.Background(), "room-1", "alice", "   ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
	roomRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateRoomStatus_WaitingToActiveEmitsJoinMessage(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", CustomerID: "alice", Status: models.RoomStatusWaiting}, nil)
	messageRepo.On("Create", ctx, mock.MatchedBy(func(msg *models.Message) bool {
		return msg.SenderID == models.SystemSender && msg.Content == "bob entrou na conversa"
	})).Return(nil).Once()
	roomRepo.On("Save", ctx, mock.MatchedBy(func(room *models.Room) bool {
		return room.Status == models.RoomStatusActive && room.AdminID != nil && *room.AdminID == "bob"
	})).Return(nil)

	room, err := svc.UpdateRoomStatus(ctx, "room-1", models.RoomStatusActive, "bob")

	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusActive, room.Status)
	assert.Equal(t, "bob", *room.AdminID)
	roomRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestUpdateRoomStatus_ActiveToActiveEmitsNoMessage(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	adminID := "bob"
	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", Status: models.RoomStatusActive, AdminID: &adminID}, nil)
	roomRepo.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.UpdateRoomStatus(ctx, "room-1", models.RoomStatusActive, "carol")

	assert.NoError(t, err)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateRoomStatus_CloseEmitsClosureMessage(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", Status: models.RoomStatusActive}, nil)
	messageRepo.On("Create", ctx, mock.MatchedBy(func(msg *models.Message) bool {
		return msg.Content == "O atendimento foi encerrado por bob. Obrigado pelo contato!"
	})).Return(nil).Once()
	roomRepo.On("Save", ctx, mock.MatchedBy(func(room *models.Room) bool {
		return room.Status == models.RoomStatusClosed && *room.AdminID == "bob"
	})).Return(nil)

	room, err := svc.UpdateRoomStatus(ctx, "room-1", models.RoomStatusClosed, "bob")

	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusClosed, room.Status)
	messageRepo.AssertExpectations(t)
}

func TestUpdateRoomStatus_InvalidStatus(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)

	_, err := svc.UpdateRoomStatus(context.Background(), "room-1", "archived", "bob")

	assert.ErrorIs(t, err, ErrInvalidRoomStatus)
	roomRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateRoomStatus_UnknownRoom(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateRoomStatus(ctx, "missing", models.RoomStatusClosed, "bob")

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestReopenRoom_ClearsAdminAndAppendsMessage(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	adminID := "bob"
	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", Status: models.RoomStatusClosed, AdminID: &adminID}, nil)
	messageRepo.On("Create", ctx, mock.MatchedBy(func(msg *models.Message) bool {
		return msg.SenderID == models.SystemSender &&
			msg.Content == "Conversa reaberta. Aguardando atendimento..."
	})).Return(nil).Once()
	roomRepo.On("Save", ctx, mock.MatchedBy(func(room *models.Room) bool {
		return room.Status == models.RoomStatusWaiting && room.AdminID == nil
	})).Return(nil)

	room, err := svc.ReopenRoom(ctx, "room-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusWaiting, room.Status)
	assert.Nil(t, room.AdminID)
	messageRepo.AssertExpectations(t)
}

func TestReopenRoom_WaitingRoomStillAppendsMessage(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindByID", ctx, "room-1").
		Return(&models.Room{ID: "room-1", Status: models.RoomStatusWaiting}, nil)
	messageRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	roomRepo.On("Save", ctx, mock.Anything).Return(nil)

	room, err := svc.ReopenRoom(ctx, "room-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusWaiting, room.Status)
	messageRepo.AssertExpectations(t)
}

func TestCleanInactiveRooms_ClosesOldQuietRooms(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	old := time.Now().Add(-2 * time.Hour)
	candidates := []models.Room{
		{ID: "silent", Status: models.RoomStatusWaiting, CreatedAt: old},
		{ID: "stale", Status: models.RoomStatusActive, CreatedAt: old},
		{ID: "busy", Status: models.RoomStatusActive, CreatedAt: old},
	}

	roomRepo.On("FindOpenCreatedBefore", ctx, mock.AnythingOfType("time.Time")).Return(candidates, nil)
	// Never had a message
	messageRepo.On("FindLatestByRoom", ctx, "silent").Return(nil, gorm.ErrRecordNotFound)
	// Last message well before the cutoff
	messageRepo.On("FindLatestByRoom", ctx, "stale").
		Return(&models.Message{RoomID: "stale", CreatedAt: old}, nil)
	// Recent message keeps the room open
	messageRepo.On("FindLatestByRoom", ctx, "busy").
		Return(&models.Message{RoomID: "busy", CreatedAt: time.Now()}, nil)
	roomRepo.On("SaveAll", ctx, mock.MatchedBy(func(rooms []*models.Room) bool {
		if len(rooms) != 2 {
			return false
		}
		return rooms[0].ID == "silent" && rooms[1].ID == "stale" &&
			rooms[0].Status == models.RoomStatusClosed && rooms[1].Status == models.RoomStatusClosed
	})).Return(nil)

	summary, err := svc.CleanInactiveRooms(ctx, 30)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Cleaned)
	assert.Len(t, summary.Rooms, 2)
	roomRepo.AssertExpectations(t)
}

func TestCleanInactiveRooms_NoCandidates(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	roomRepo.On("FindOpenCreatedBefore", ctx, mock.AnythingOfType("time.Time")).
		Return([]models.Room{}, nil)
	roomRepo.On("SaveAll", ctx, mock.Anything).Return(nil)

	summary, err := svc.CleanInactiveRooms(ctx, 30)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Cleaned)
	assert.Empty(t, summary.Rooms)
}

func TestCleanInactiveRooms_NonPositiveMinutesUsesDefault(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	var captured time.Time
	roomRepo.On("FindOpenCreatedBefore", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		captured = cutoff
		return true
	})).Return([]models.Room{}, nil)
	roomRepo.On("SaveAll", ctx, mock.Anything).Return(nil)

	_, err := svc.CleanInactiveRooms(ctx, 0)

	assert.NoError(t, err)
	expected := time.Now().Add(-DefaultInactiveMinutes * time.Minute)
	assert.WithinDuration(t, expected, captured, 5*time.Second)
}

// Full lifecycle: open, admin joins, close, reopen. Exercises the room state
// machine end to end against the mocks.
func TestChatLifecycle(t *testing.T) {
	roomRepo := new(MockRoomRepository)
	messageRepo := new(MockMessageRepository)
	svc := newTestChatService(roomRepo, messageRepo)
	ctx := context.Background()

	room := &models.Room{ID: "room-1", CustomerID: "alice", Status: models.RoomStatusWaiting}

	roomRepo.On("FindLatestOpenByCustomer", ctx, "alice").Return(nil, gorm.ErrRecordNotFound).Once()
	roomRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created := args.Get(1).(*models.Room)
		created.ID = room.ID
	}).Return(nil).Once()
	roomRepo.On("FindByID", ctx, "room-1").Return(room, nil)
	roomRepo.On("Save", ctx, mock.Anything).Return(nil)
	messageRepo.On("Create", ctx, mock.Anything).Return(nil)

	opened, err := svc.OpenRoom(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusWaiting, opened.Status)

	joined, err := svc.UpdateRoomStatus(ctx, "room-1", models.RoomStatusActive, "bob")
	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusActive, joined.Status)
	assert.Equal(t, "bob", *joined.AdminID)

	_, err = svc.PostMessage(ctx, "room-1", "alice", "oi")
	assert.NoError(t, err)

	closed, err := svc.UpdateRoomStatus(ctx, "room-1", models.RoomStatusClosed, "bob")
	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusClosed, closed.Status)

	_, err = svc.PostMessage(ctx, "room-1", "alice", "alguém aí?")
	assert.ErrorIs(t, err, ErrRoomClosed)

	reopened, err := svc.ReopenRoom(ctx, "room-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RoomStatusWaiting, reopened.Status)
	assert.Nil(t, reopened.AdminID)
}
