package service

import (
	"context"

	"github.com/oCowley/solo-boom/internal/api"
	"github.com/oCowley/solo-boom/internal/regions"
)

// RiotAPI is the slice of the game-data API the services consume. Account
// and match lookups take a routing cluster, summoner and league lookups a
// platform region; the split mirrors the upstream host contract.
type RiotAPI interface {
	AccountByRiotID(ctx context.Context, cluster regions.Cluster, gameName, tagLine string) (*api.AccountDTO, error)
	SummonerByPUUID(ctx context.Context, region regions.Region, puuid string) (*api.SummonerDTO, error)
	SummonerByName(ctx context.Context, region regions.Region, name string) (*api.SummonerDTO, error)
	LeagueEntries(ctx context.Context, region regions.Region, summonerID string) ([]api.LeagueEntryDTO, error)
	MatchIDs(ctx context.Context, cluster regions.Cluster, puuid string, start, count int) ([]string, error)
	MatchByID(ctx context.Context, cluster regions.Cluster, matchID string) (*api.MatchDTO, error)
}
