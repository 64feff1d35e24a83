package commands

import (
	"context"
	"log/slog"
	"time"
)

// ExpirySweeper runs ExpireUnpaid on a fixed interval until stopped.
type ExpirySweeper struct {
	cmds     ReservationCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewExpirySweeper(cmds ReservationCommands, interval time.Duration, logger *slog.Logger) *ExpirySweeper {
	return &ExpirySweeper{cmds: cmds, interval: interval, logger: logger}
}

// Start launches the sweep loop. A non-positive interval disables it.
func (s *ExpirySweeper) Start() {
	if s.interval <= 0 {
		s.logger.Info("expiry sweeper disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx)
	s.logger.Info("expiry sweeper started", slog.Duration("interval", s.interval))
}

// Stop cancels the loop and waits for an in-flight sweep, or for ctx.
func (s *ExpirySweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ExpirySweeper) loop(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	result, err := s.cmds.ExpireUnpaid(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		}
		return
	}
	if result.Released > 0 {
		s.logger.Info("expired unpaid reservations",
			slog.Int("scanned", result.Scanned),
			slog.Int("released", result.Released),
			slog.Time("cutoff", result.Cutoff))
	}
}
