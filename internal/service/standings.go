package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oCowley/solo-boom/internal/api"
	"github.com/oCowley/solo-boom/internal/constants"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/regions"
)

// StandingsService fetches a player's current ranked standings. One lookup
// returns every queue the player is placed in; only Solo/Duo and Flex are
// kept. A queue the player has no placement for is nil, not an error.
type StandingsService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewStandingsService(riot RiotAPI, logger zerolog.Logger) *StandingsService {
	return &StandingsService{riot: riot, logger: logger}
}

func (s *StandingsService) FetchStandings(ctx context.Context, player *domain.ResolvedPlayer, region regions.Region) (solo, flex *domain.RankedStanding, err error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	entries, err := s.riot.LeagueEntries(ctx, region, player.SummonerID)
	if err != nil {
		return nil, nil, fmt.Errorf("league entries for %s: %w", player.SummonerID, err)
	}

	for i := range entries {
		entry := &entries[i]
		switch entry.QueueType {
		case api.QueueSolo:
			solo = toStanding(entry)
		case api.QueueFlex:
			flex = toStanding(entry)
		}
	}

	s.logger.Debug().
		Str("summoner_id", player.SummonerID).
		Bool("has_solo", solo != nil).
		Bool("has_flex", flex != nil).
		Msg("standings fetched")

	return solo, flex, nil
}

func toStanding(entry *api.LeagueEntryDTO) *domain.RankedStanding {
	return &domain.RankedStanding{
		QueueType:    entry.QueueType,
		Tier:         entry.Tier,
		Division:     entry.Rank,
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
		HotStreak:    entry.HotStreak,
	}
}
