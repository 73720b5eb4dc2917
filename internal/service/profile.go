package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oCowley/solo-boom/internal/constants"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/regions"
)

// ProfileService assembles the composite player profile. Identity resolution
// runs first and is the only fatal stage; ranked standings and match history
// then run in parallel and degrade independently, so a partially successful
// aggregation still returns a profile. Nothing is cached: every call
// re-fetches from upstream.
type ProfileService struct {
	resolver  *ResolverService
	standings *StandingsService
	history   *HistoryService
	logger    zerolog.Logger
}

func NewProfileService(resolver *ResolverService, standings *StandingsService, history *HistoryService, logger zerolog.Logger) *ProfileService {
	return &ProfileService{resolver: resolver, standings: standings, history: history, logger: logger}
}

// BuildProfile resolves the handle and aggregates standings, match history
// and derived win statistics. Resolution failures propagate with their kind
// intact; standings and history failures are logged and leave the
// corresponding fields empty.
func (s *ProfileService) BuildProfile(ctx context.Context, handle domain.Handle, region regions.Region, limit int) (*domain.PlayerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	resolved, err := s.resolver.Resolve(ctx, handle, region)
	if err != nil {
		return nil, err
	}

	profile := &domain.PlayerProfile{
		Resolved: *resolved,
		Matches:  []domain.MatchSummary{},
	}

	g := new(errgroup.Group)

	g.Go(func() error {
		solo, flex, err := s.standings.FetchStandings(ctx, resolved, region)
		if err != nil {
			s.logger.Warn().Err(err).Str("summoner_id", resolved.SummonerID).
				Msg("standings unavailable, continuing unranked")
			return nil
		}
		profile.Solo = solo
		profile.Flex = flex
		return nil
	})

	g.Go(func() error {
		matches, err := s.history.FetchHistory(ctx, resolved, region, limit)
		if err != nil {
			s.logger.Warn().Err(err).Str("puuid", resolved.PUUID).
				Msg("match history unavailable, continuing without matches")
			return nil
		}
		profile.Matches = matches
		return nil
	})

	_ = g.Wait()

	profile.TotalGames = len(profile.Matches)
	for _, m := range profile.Matches {
		if m.Stats.Win {
			profile.Wins++
		}
	}
	profile.Losses = profile.TotalGames - profile.Wins
	if profile.TotalGames > 0 {
		profile.WinratePercent = float64(profile.Wins) / float64(profile.TotalGames) * 100
	}

	s.logger.Info().
		Str("handle", handle.String()).
		Str("region", string(region)).
		Int("total_games", profile.TotalGames).
		Float64("winrate", profile.WinratePercent).
		Msg("profile built")

	return profile, nil
}
