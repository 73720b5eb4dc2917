package server

import (
	"net/http"
	"strconv"

	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/regions"
)

// GetProfile serves the composite player profile for ?name=&region=&count=.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	handle, err := domain.ParseHandle(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	region, err := regions.Parse(r.URL.Query().Get("region"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	count := parseCount(r.URL.Query().Get("count"))

	profile, err := s.profiles.BuildProfile(r.Context(), handle, region, count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

// GetSummoner resolves a handle without aggregating the rest of the profile.
func (s *Server) GetSummoner(w http.ResponseWriter, r *http.Request) {
	handle, err := domain.ParseHandle(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	region, err := regions.Parse(r.URL.Query().Get("region"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resolved, err := s.resolver.Resolve(r.Context(), handle, region)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"summoner": resolved})
}

// GetLeague serves ranked standings for ?summonerId=&region=.
func (s *Server) GetLeague(w http.ResponseWriter, r *http.Request) {
	summonerID := r.URL.Query().Get("summonerId")
	if summonerID == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "summonerId is required"})
		return
	}
	region, err := regions.Parse(r.URL.Query().Get("region"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	player := &domain.ResolvedPlayer{SummonerID: summonerID}
	solo, flex, err := s.standings.FetchStandings(r.Context(), player, region)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"rankedSolo": solo,
		"rankedFlex": flex,
	})
}

// GetMatches serves match history for ?puuid=&region=&count=.
func (s *Server) GetMatches(w http.ResponseWriter, r *http.Request) {
	puuid := r.URL.Query().Get("puuid")
	if puuid == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "puuid is required"})
		return
	}
	region, err := regions.Parse(r.URL.Query().Get("region"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	count := parseCount(r.URL.Query().Get("count"))

	player := &domain.ResolvedPlayer{PUUID: puuid}
	matches, err := s.history.FetchHistory(r.Context(), player, region, count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func parseCount(raw string) int {
	if raw == "" {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return count
}
