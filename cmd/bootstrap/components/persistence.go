package components

import (
	"jobtrack/internal/infra/backend"
	"jobtrack/internal/infra/localstore"
	"jobtrack/internal/infra/remotestore"
	"jobtrack/internal/pkg/clock"
	"jobtrack/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			remotestore.NewPgxJobQueries,
			fx.As(new(remotestore.JobQueries)),
		),
		NewRemoteFactory,
		NewSelector,
		// The migration routine reads the local store through a narrower view.
		fx.Annotate(
			func(store *localstore.Store) *localstore.Store { return store },
			fx.As(new(usecase.LocalSource)),
		),
	),
)

// NewRemoteFactory builds per-owner remote stores over one shared pool.
func NewRemoteFactory(queries remotestore.JobQueries, clk clock.Clock) backend.Factory {
	return func(ownerID string) backend.Store {
		return remotestore.New(queries, clk, ownerID)
	}
}

func NewSelector(local *localstore.Store, newRemote backend.Factory) *backend.Selector {
	return backend.NewSelector(local, newRemote)
}
