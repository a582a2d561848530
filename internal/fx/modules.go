package fx

import (
	"lol-watcher/internal/api"
	"lol-watcher/internal/config"
	"lol-watcher/internal/logger"
	"lol-watcher/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	// api client
	fx.Provide(
		fx.Annotate(api.NewRiotClient, fx.As(new(service.RiotAPI))),
	),
	// svc
	fx.Provide(service.NewSummonerService),
	fx.Invoke(func(cfg *config.Config, logger zerolog.Logger) {
		cfg.LogSummary(logger)
	}),
)
