package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oCowley/solo-boom/internal/api"
	"github.com/oCowley/solo-boom/internal/constants"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/regions"
)

// HistoryService fetches a player's recent matches. The id list is one
// lookup and fatal on failure; detail lookups then fan out concurrently with
// partial tolerance: a failed detail drops that match from the result, the
// survivors keep the id-list order. The returned slice can therefore be
// shorter than requested, down to empty.
type HistoryService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewHistoryService(riot RiotAPI, logger zerolog.Logger) *HistoryService {
	return &HistoryService{riot: riot, logger: logger}
}

func (s *HistoryService) FetchHistory(ctx context.Context, player *domain.ResolvedPlayer, region regions.Region, limit int) ([]domain.MatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if limit <= 0 {
		limit = constants.DefaultMatchCount
	}
	if limit > constants.MaxMatchCount {
		limit = constants.MaxMatchCount
	}

	cluster := region.Cluster()

	ids, err := s.riot.MatchIDs(ctx, cluster, player.PUUID, 0, limit)
	if err != nil {
		return nil, fmt.Errorf("match id list for %s: %w", player.PUUID, err)
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}

	// Scatter-gather with partial tolerance: results land in the slot of
	// their id so survivors keep the original order regardless of which
	// fetch completes first.
	results := make([]*domain.MatchSummary, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MatchFetchConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			match, err := s.riot.MatchByID(gCtx, cluster, id)
			if err != nil {
				s.logger.Warn().Err(err).Str("match_id", id).Msg("dropping match, detail fetch failed")
				return nil
			}
			summary, ok := summarize(match, player.PUUID)
			if !ok {
				s.logger.Debug().Str("match_id", id).Str("puuid", player.PUUID).
					Msg("dropping match, player participant record absent")
				return nil
			}
			results[i] = summary
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]domain.MatchSummary, 0, len(ids))
	for _, r := range results {
		if r != nil {
			matches = append(matches, *r)
		}
	}

	s.logger.Debug().
		Str("puuid", player.PUUID).
		Int("requested", len(ids)).
		Int("fetched", len(matches)).
		Msg("match history fetched")

	return matches, nil
}

// summarize extracts the resolved player's slice of a match. A match the
// player has no participant record in is unusable and reported as such.
func summarize(match *api.MatchDTO, puuid string) (*domain.MatchSummary, bool) {
	var participant *api.ParticipantDTO
	for i := range match.Info.Participants {
		if match.Info.Participants[i].PUUID == puuid {
			participant = &match.Info.Participants[i]
			break
		}
	}
	if participant == nil {
		return nil, false
	}

	return &domain.MatchSummary{
		MatchID:         match.Metadata.MatchID,
		StartTimestamp:  match.Info.GameCreation,
		DurationSeconds: match.Info.GameDuration,
		QueueID:         match.Info.QueueID,
		GameMode:        match.Info.GameMode,
		Stats: domain.ParticipantStats{
			ChampionID:        participant.ChampionID,
			ChampionName:      participant.ChampionName,
			Kills:             participant.Kills,
			Deaths:            participant.Deaths,
			Assists:           participant.Assists,
			ChampLevel:        participant.ChampLevel,
			Items:             participant.Items(),
			DamageToChampions: participant.TotalDamageDealtToChampions,
			MinionsKilled:     participant.TotalMinionsKilled + participant.NeutralMinionsKilled,
			GoldEarned:        participant.GoldEarned,
			Win:               participant.Win,
		},
	}, true
}
