package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/rank"
	"github.com/oCowley/solo-boom/internal/regions"
)

// leaderboardFetchConcurrency bounds parallel profile builds when rendering
// the aggregated leaderboard.
const leaderboardFetchConcurrency = 4

// ListEntries serves the raw curated entries.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.List()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"profiles": entries})
}

type addEntryRequest struct {
	SummonerName string `json:"summonerName"`
	Region       string `json:"region"`
	Notes        string `json:"notes"`
	Featured     bool   `json:"featured"`
}

// AddEntry creates a curated entry. Admin only.
func (s *Server) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	req.SummonerName = strings.TrimSpace(req.SummonerName)
	if req.SummonerName == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "summonerName is required"})
		return
	}
	region, err := regions.Parse(req.Region)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entry, err := s.leaderboard.Add(req.SummonerName, string(region), req.Notes, req.Featured)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"profile": entry})
}

// DeleteEntry removes a curated entry by id. Admin only.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.leaderboard.Delete(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "profile removed"})
}

// LeaderboardRow pairs a curated entry with its aggregated profile. Profile
// is nil when the per-entry fetch failed; such rows sort last rather than
// failing the whole view.
type LeaderboardRow struct {
	Entry   domain.LeaderboardEntry `json:"entry"`
	Profile *domain.PlayerProfile   `json:"profile,omitempty"`
}

// GetLeaderboard serves the display-ready leaderboard: every curated entry
// with its profile fetched, split featured/regular and sorted by Solo/Duo
// rank.
func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.List()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rows := make([]LeaderboardRow, len(entries))

	g, gCtx := errgroup.WithContext(r.Context())
	g.SetLimit(leaderboardFetchConcurrency)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			rows[i] = LeaderboardRow{Entry: entry}

			handle, err := domain.ParseHandle(entry.SummonerName)
			if err != nil {
				s.logger.Warn().Str("entry_id", entry.ID).Str("summoner", entry.SummonerName).
					Msg("unparseable leaderboard entry, skipping profile")
				return nil
			}
			region, err := regions.Parse(entry.Region)
			if err != nil {
				s.logger.Warn().Str("entry_id", entry.ID).Str("region", entry.Region).
					Msg("leaderboard entry has unknown region, skipping profile")
				return nil
			}

			profile, err := s.profiles.BuildProfile(gCtx, handle, region, 0)
			if err != nil {
				s.logger.Warn().Err(err).Str("entry_id", entry.ID).
					Msg("leaderboard profile fetch failed, rendering entry without data")
				return nil
			}
			rows[i].Profile = profile
			return nil
		})
	}
	_ = g.Wait()

	var featured, regular []LeaderboardRow
	for _, row := range rows {
		if row.Entry.Featured {
			featured = append(featured, row)
		} else {
			regular = append(regular, row)
		}
	}
	sortRowsByRank(featured)
	sortRowsByRank(regular)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"featured": featured,
		"profiles": regular,
	})
}

func sortRowsByRank(rows []LeaderboardRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Profile, rows[j].Profile
		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return rank.Compare(a.Solo, b.Solo) < 0
	})
}
