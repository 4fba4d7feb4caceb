package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"booster/internal/api/models"

	"github.com/redis/go-redis/v9"
)

// Event names pushed to subscribed storefront/admin clients.
const (
	EventMessageCreated = "message.created"
	EventRoomUpdated    = "room.updated"
)

// Publisher notifies subscribers about chat row writes, scoped by room.
// The durable write always happens first; publishing is best-effort.
type Publisher interface {
	MessageCreated(ctx context.Context, message *models.Message)
	RoomUpdated(ctx context.Context, room *models.Room)
}

type event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// RedisPublisher publishes chat events on per-room redis channels.
type RedisPublisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisPublisher connects to redis and verifies the connection.
func NewRedisPublisher(addr, password string, logger *slog.Logger) (*RedisPublisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPublisher{client: rdb, logger: logger}, nil
}

// Close releases the redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

func (p *RedisPublisher) MessageCreated(ctx context.Context, message *models.Message) {
	p.publish(ctx, channelForRoom(message.RoomID), event{Event: EventMessageCreated, Data: message})
}

func (p *RedisPublisher) RoomUpdated(ctx context.Context, room *models.Room) {
	p.publish(ctx, channelForRoom(room.ID), event{Event: EventRoomUpdated, Data: room})
}

// publish never fails the caller: the row is already durable, a missed push
// only means the client falls back to refetching.
func (p *RedisPublisher) publish(ctx context.Context, channel string, ev event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to marshal chat event", "channel", channel, "error", err)
		return
	}
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		p.logger.Error("failed to publish chat event", "channel", channel, "event", ev.Event, "error", err)
	}
}

func channelForRoom(roomID string) string {
	return "chat:room:" + roomID
}
