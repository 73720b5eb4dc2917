package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/oCowley/solo-boom/internal/config"
	"github.com/oCowley/solo-boom/internal/regions"
)

const apiDomain = "api.riotgames.com"

// RiotClient talks to the Riot game-data API. Account and match endpoints
// are served by the continental cluster host; summoner and league endpoints
// by the platform (region) host. The client performs no retries: every
// failure kind propagates to the caller.
type RiotClient struct {
	apiKey string
	client *fasthttp.Client

	// baseOverride reroutes all requests to a single host, with the
	// cluster or region code prepended as the first path segment. Tests
	// only.
	baseOverride string
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return &RiotClient{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         cfg.UpstreamTimeout,
			WriteTimeout:        cfg.UpstreamTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// hostURL builds the scheme+host prefix for the given subdomain ("kr",
// "asia", ...).
func (c *RiotClient) hostURL(sub string) string {
	if c.baseOverride != "" {
		return c.baseOverride + "/" + sub
	}
	return "https://" + sub + "." + apiDomain
}

// AccountByRiotID resolves a Riot ID to a global account. Cluster-routed.
func (c *RiotClient) AccountByRiotID(ctx context.Context, cluster regions.Cluster, gameName, tagLine string) (*AccountDTO, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.hostURL(string(cluster)), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountDTO](ctx, c, u)
}

// SummonerByPUUID fetches the region-local summoner record for a global key.
func (c *RiotClient) SummonerByPUUID(ctx context.Context, region regions.Region, puuid string) (*SummonerDTO, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		c.hostURL(string(region)), url.PathEscape(puuid))
	return doRequest[SummonerDTO](ctx, c, u)
}

// SummonerByName fetches a summoner by legacy name.
func (c *RiotClient) SummonerByName(ctx context.Context, region regions.Region, name string) (*SummonerDTO, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s",
		c.hostURL(string(region)), url.PathEscape(name))
	return doRequest[SummonerDTO](ctx, c, u)
}

// LeagueEntries lists ranked standings across every queue the summoner
// participates in.
func (c *RiotClient) LeagueEntries(ctx context.Context, region regions.Region, summonerID string) ([]LeagueEntryDTO, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s",
		c.hostURL(string(region)), url.PathEscape(summonerID))
	entries, err := doRequest[[]LeagueEntryDTO](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

// MatchIDs lists the player's most recent match ids, most-recent-first.
// Cluster-routed.
func (c *RiotClient) MatchIDs(ctx context.Context, cluster regions.Cluster, puuid string, start, count int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		c.hostURL(string(cluster)), url.PathEscape(puuid), start, count)
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

// MatchByID fetches full match detail. Cluster-routed.
func (c *RiotClient) MatchByID(ctx context.Context, cluster regions.Cluster, matchID string) (*MatchDTO, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s",
		c.hostURL(string(cluster)), url.PathEscape(matchID))
	return doRequest[MatchDTO](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *RiotClient, u string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	if deadline, ok := ctx.Deadline(); ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if err := statusToError(resp); err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}
	return &result, nil
}

// statusToError maps the upstream status-code contract onto the error
// taxonomy: 404, 403 and 429 get dedicated kinds, any other non-2xx keeps
// its code and body for diagnostics.
func statusToError(resp *fasthttp.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == fasthttp.StatusNotFound:
		return ErrNotFound
	case code == fasthttp.StatusForbidden:
		return ErrAuthRejected
	case code == fasthttp.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &StatusError{Code: code, Body: string(resp.Body())}
	}
}
