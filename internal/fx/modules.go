package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/oCowley/solo-boom/internal/api"
	"github.com/oCowley/solo-boom/internal/auth"
	"github.com/oCowley/solo-boom/internal/config"
	"github.com/oCowley/solo-boom/internal/database"
	"github.com/oCowley/solo-boom/internal/logger"
	"github.com/oCowley/solo-boom/internal/repository"
	"github.com/oCowley/solo-boom/internal/server"
	"github.com/oCowley/solo-boom/internal/service"
)

func ProvideLeaderboardStore(cfg *config.Config, log zerolog.Logger) *repository.LeaderboardStore {
	return repository.NewLeaderboardStore(cfg.LeaderboardPath, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// stores
	fx.Provide(ProvideLeaderboardStore),
	fx.Provide(repository.NewUserStore),
	// riot client
	fx.Provide(fx.Annotate(api.NewRiotClient, fx.As(new(service.RiotAPI)))),
	// svc
	fx.Provide(service.NewResolverService),
	fx.Provide(service.NewStandingsService),
	fx.Provide(service.NewHistoryService),
	fx.Provide(service.NewProfileService),
	// auth
	fx.Provide(auth.NewSessions),
	// server
	fx.Provide(server.NewServer),
)
