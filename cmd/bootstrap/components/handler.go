package components

import (
	"jobtrack/internal/handler"
	"jobtrack/internal/handler/api"
	"jobtrack/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewJobHandler,
		api.NewMigrationHandler,
		api.NewExtractHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
