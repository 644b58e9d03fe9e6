package bootstrap

import (
	"jobtrack/internal/pkg/config"
	"jobtrack/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Auth.JWTSecret)
}
