package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/oCowley/solo-boom/internal/config"
	"github.com/oCowley/solo-boom/internal/regions"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *RiotClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewRiotClient(&config.Config{
		RiotAPIKey:      "test-key",
		UpstreamTimeout: 5 * time.Second,
	})
	client.baseOverride = srv.URL
	return client
}

func TestAccountByRiotID_RoutesThroughCluster(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asia/riot/account/v1/accounts/by-riot-id/Faker/KR1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))
		w.Write([]byte(`{"puuid":"puuid-faker","gameName":"Faker","tagLine":"KR1"}`))
	})

	account, err := client.AccountByRiotID(context.Background(), regions.Asia, "Faker", "KR1")
	require.NoError(t, err)
	assert.Equal(t, "puuid-faker", account.PUUID)
	assert.Equal(t, "Faker", account.GameName)
}

func TestSummonerByName_EscapesNameAndRoutesThroughRegion(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// PathEscape keeps spaces encoded on the wire; the parsed path is
		// the decoded form.
		assert.Equal(t, "/kr/lol/summoner/v4/summoners/by-name/Hide on bush", r.URL.Path)
		w.Write([]byte(`{"id":"summoner-id","puuid":"puuid-faker","name":"Hide on bush","profileIconId":6,"summonerLevel":604}`))
	})

	summoner, err := client.SummonerByName(context.Background(), regions.KR, "Hide on bush")
	require.NoError(t, err)
	assert.Equal(t, "summoner-id", summoner.ID)
	assert.Equal(t, 604, summoner.SummonerLevel)
}

func TestLeagueEntries(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/kr/lol/league/v4/entries/by-summoner/summoner-id", r.URL.Path)
		w.Write([]byte(`[{"queueType":"RANKED_SOLO_5x5","tier":"CHALLENGER","rank":"I","leaguePoints":1024,"wins":300,"losses":180,"hotStreak":true}]`))
	})

	entries, err := client.LeagueEntries(context.Background(), regions.KR, "summoner-id")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, QueueSolo, entries[0].QueueType)
	assert.Equal(t, 1024, entries[0].LeaguePoints)
}

func TestMatchIDs_PassesPagination(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asia/lol/match/v5/matches/by-puuid/puuid-faker/ids", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("start"))
		assert.Equal(t, "20", r.URL.Query().Get("count"))
		w.Write([]byte(`["KR_1","KR_2"]`))
	})

	ids, err := client.MatchIDs(context.Background(), regions.Asia, "puuid-faker", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"KR_1", "KR_2"}, ids)
}

func TestMatchByID_ItemSlots(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"metadata": {"matchId": "KR_1", "participants": ["puuid-faker"]},
			"info": {
				"gameCreation": 1700000000000,
				"gameDuration": 1800,
				"gameMode": "CLASSIC",
				"queueId": 420,
				"participants": [{
					"puuid": "puuid-faker",
					"championName": "Yasuo",
					"item0": 3031, "item3": 6673, "item6": 3363,
					"win": true
				}]
			}
		}`))
	})

	match, err := client.MatchByID(context.Background(), regions.Asia, "KR_1")
	require.NoError(t, err)
	assert.Equal(t, "KR_1", match.Metadata.MatchID)
	require.Len(t, match.Info.Participants, 1)
	assert.Equal(t, [7]int{3031, 0, 0, 6673, 0, 0, 3363}, match.Info.Participants[0].Items())
}

func TestStatusMapping(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad key", http.StatusForbidden, ErrAuthRejected},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.SummonerByPUUID(context.Background(), regions.KR, "puuid-faker")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestStatusMapping_OtherCodesKeepDetail(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	})

	_, err := client.SummonerByPUUID(context.Background(), regions.KR, "puuid-faker")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, fasthttp.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, "maintenance", statusErr.Body)
}
