package components

import (
	"log/slog"

	"jobtrack/internal/ai"
	"jobtrack/internal/pkg/clock"
	"jobtrack/internal/pkg/config"
	"jobtrack/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewJobService,
		usecase.NewMigrator,
		usecase.NewTokenValidator,
		NewExtractor,
	),
)

// NewExtractor wires the model-backed extractor, or a disabled stand-in when
// no API key is configured so the rest of the service still starts.
func NewExtractor(cfg config.Config, logger *slog.Logger) (ai.Extractor, error) {
	if cfg.AI.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, job extraction is disabled")
		return ai.NewDisabledExtractor(), nil
	}
	return ai.NewGeminiExtractor(cfg.AI)
}
