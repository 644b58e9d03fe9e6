package bootstrap

import (
	"context"
	"log/slog"

	"jobtrack/internal/infra/localstore"
	"jobtrack/internal/pkg/clock"
	"jobtrack/internal/pkg/config"

	"go.uber.org/fx"
)

var LocalStoreModule = fx.Module("localstore",
	fx.Provide(
		NewLocalStore,
	),
)

func NewLocalStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (*localstore.Store, error) {
	store, cleanup, err := localstore.Open(cfg.Local.Path, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}
