package worker

import (
	"context"
	"log/slog"
	"time"

	"booster/internal/api/service"
)

// Sweeper periodically closes chat rooms that went quiet. It is the automated
// counterpart of the clean-inactive endpoint, so an idle storefront does not
// accumulate open rooms forever.
type Sweeper struct {
	chatService     service.ChatService
	interval        time.Duration
	inactiveMinutes int
	logger          *slog.Logger
	cancel          context.CancelFunc
	done            chan struct{}
}

func NewSweeper(chatService service.ChatService, interval time.Duration, inactiveMinutes int, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		chatService:     chatService,
		interval:        interval,
		inactiveMinutes: inactiveMinutes,
		logger:          logger,
		done:            make(chan struct{}),
	}
}

// Start launches the sweep loop. The first sweep runs after one full interval,
// not immediately, so a restart storm does not hammer the database.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.run(ctx)
	s.logger.Info("chat sweeper started", "interval", s.interval, "inactive_minutes", s.inactiveMinutes)
}

// Shutdown stops the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Shutdown() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("chat sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			summary, err := s.chatService.CleanInactiveRooms(ctx, s.inactiveMinutes)
			if err != nil {
				s.logger.Error("chat sweep failed", "error", err)
				continue
			}
			if summary.Cleaned > 0 {
				s.logger.Info("chat sweep closed rooms", "cleaned", summary.Cleaned)
			}
		case <-ctx.Done():
			return
		}
	}
}
