package bootstrap

import (
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSettings,
		NewClock,
	),
)

// NewSettings resolves the booking policy file and time zone once at startup.
func NewSettings(cfg config.Config) (shared.Settings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return shared.Settings{}, err
	}
	policy, err := config.LoadPolicy(cfg.Booking.PolicyPath)
	if err != nil {
		return shared.Settings{}, err
	}
	return shared.Settings{
		Policy:          policy.Capacity,
		Labels:          policy.Labels,
		Location:        loc,
		UnpaidRetention: cfg.Booking.UnpaidRetention,
		SweepBatchSize:  cfg.Booking.SweepBatchSize,
	}, nil
}

func NewClock(settings shared.Settings) clock.Clock {
	return clock.NewLocalClock(settings.Location)
}
