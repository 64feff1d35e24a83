package bootstrap

import (
	"context"
	"log/slog"

	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(NewExpirySweeper),
	fx.Invoke(registerSweeper),
)

func NewExpirySweeper(cfg config.Config, cmds commands.ReservationCommands, logger *slog.Logger) *commands.ExpirySweeper {
	return commands.NewExpirySweeper(cmds, cfg.Booking.SweepInterval, logger.With(slog.String("component", "sweeper")))
}

func registerSweeper(lc fx.Lifecycle, sweeper *commands.ExpirySweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: sweeper.Stop,
	})
}
