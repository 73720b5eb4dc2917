package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oCowley/solo-boom/internal/constants"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/regions"
)

// ResolverService turns a user-supplied handle into a stable player
// identity. A Riot ID costs two upstream calls (account on the cluster host,
// then summoner on the region host); a legacy name costs one. Failures
// propagate unchanged so callers can tell not-found from rate-limited from
// misconfigured credentials.
type ResolverService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewResolverService(riot RiotAPI, logger zerolog.Logger) *ResolverService {
	return &ResolverService{riot: riot, logger: logger}
}

func (s *ResolverService) Resolve(ctx context.Context, handle domain.Handle, region regions.Region) (*domain.ResolvedPlayer, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	if handle.IsRiotID() {
		return s.resolveRiotID(ctx, handle, region)
	}
	return s.resolveLegacyName(ctx, handle, region)
}

func (s *ResolverService) resolveRiotID(ctx context.Context, handle domain.Handle, region regions.Region) (*domain.ResolvedPlayer, error) {
	cluster := region.Cluster()

	s.logger.Debug().
		Str("game_name", handle.GameName).
		Str("tag_line", handle.TagLine).
		Str("region", string(region)).
		Str("cluster", string(cluster)).
		Msg("resolving riot id")

	account, err := s.riot.AccountByRiotID(ctx, cluster, handle.GameName, handle.TagLine)
	if err != nil {
		return nil, fmt.Errorf("account lookup for %q: %w", handle.String(), err)
	}

	summoner, err := s.riot.SummonerByPUUID(ctx, region, account.PUUID)
	if err != nil {
		return nil, fmt.Errorf("summoner lookup for %q: %w", handle.String(), err)
	}

	resolved := &domain.ResolvedPlayer{
		SummonerID:  summoner.ID,
		PUUID:       summoner.PUUID,
		DisplayName: summoner.Name,
		Level:       summoner.SummonerLevel,
		IconID:      summoner.ProfileIconID,
	}
	// Newer accounts carry an empty summoner name; fall back to the Riot ID.
	if resolved.DisplayName == "" {
		resolved.DisplayName = handle.String()
	}
	return resolved, nil
}

func (s *ResolverService) resolveLegacyName(ctx context.Context, handle domain.Handle, region regions.Region) (*domain.ResolvedPlayer, error) {
	s.logger.Debug().
		Str("name", handle.Name).
		Str("region", string(region)).
		Msg("resolving legacy name")

	summoner, err := s.riot.SummonerByName(ctx, region, handle.Name)
	if err != nil {
		return nil, fmt.Errorf("summoner lookup for %q: %w", handle.Name, err)
	}

	return &domain.ResolvedPlayer{
		SummonerID:  summoner.ID,
		PUUID:       summoner.PUUID,
		DisplayName: summoner.Name,
		Level:       summoner.SummonerLevel,
		IconID:      summoner.ProfileIconID,
	}, nil
}
