package components

import (
	"workspace-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// Repositories and read stores are bound per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
