package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/oCowley/solo-boom/internal/api"
	"github.com/oCowley/solo-boom/internal/auth"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/repository"
	"github.com/oCowley/solo-boom/internal/service"
)

// Server exposes the JSON API consumed by the web front-end.
type Server struct {
	profiles    *service.ProfileService
	resolver    *service.ResolverService
	standings   *service.StandingsService
	history     *service.HistoryService
	leaderboard *repository.LeaderboardStore
	users       *repository.UserStore
	sessions    *auth.Sessions
	logger      zerolog.Logger
}

func NewServer(
	profiles *service.ProfileService,
	resolver *service.ResolverService,
	standings *service.StandingsService,
	history *service.HistoryService,
	leaderboard *repository.LeaderboardStore,
	users *repository.UserStore,
	sessions *auth.Sessions,
	logger zerolog.Logger,
) *Server {
	return &Server{
		profiles:    profiles,
		resolver:    resolver,
		standings:   standings,
		history:     history,
		leaderboard: leaderboard,
		users:       users,
		sessions:    sessions,
		logger:      logger,
	}
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", s.GetProfile)
		r.Get("/summoner", s.GetSummoner)
		r.Get("/league", s.GetLeague)
		r.Get("/matches", s.GetMatches)

		r.Get("/leaderboard", s.GetLeaderboard)
		r.Route("/leaderboard/profiles", func(r chi.Router) {
			r.Get("/", s.ListEntries)
			r.With(s.requireAdmin).Post("/", s.AddEntry)
			r.With(s.requireAdmin).Delete("/{id}", s.DeleteEntry)
		})

		r.Post("/auth/login", s.Login)
		r.Post("/auth/logout", s.Logout)
		r.Get("/auth/me", s.Me)
		r.Post("/admin/users", s.CreateUser)
	})

	return r
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionToken extracts the caller's session token from the Authorization
// header ("Bearer <token>") or the session cookie.
func sessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return token
		}
	}
	if cookie, err := r.Cookie("session_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// requireAdmin guards mutating endpoints behind an admin session.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.sessions.CurrentUser(sessionToken(r))
		if user == nil {
			s.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		if !user.IsAdmin() {
			s.writeError(w, r, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto status codes and distinct
// human-readable messages; the generic 500 is the fallback only.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var statusErr *api.StatusError

	switch {
	case errors.Is(err, domain.ErrInvalidHandle):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid summoner name, expected a name or name#tagline"})
	case errors.Is(err, domain.ErrInvalidRegion):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown region"})
	case errors.Is(err, api.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "player not found, check the name and region"})
	case errors.Is(err, api.ErrAuthRejected):
		s.writeJSON(w, http.StatusForbidden, errorResponse{Error: "Riot API key rejected, check the server configuration"})
	case errors.Is(err, api.ErrRateLimited):
		s.writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded, try again shortly"})
	case errors.As(err, &statusErr):
		s.logger.Error().Int("upstream_status", statusErr.Code).Str("body", statusErr.Body).Msg("upstream error")
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream game-data API error"})
	case errors.Is(err, domain.ErrDuplicateEntry):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: "profile already on the leaderboard"})
	case errors.Is(err, domain.ErrEntryNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "leaderboard entry not found"})
	case errors.Is(err, domain.ErrBadCredentials):
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
	case errors.Is(err, domain.ErrUnauthorized):
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		s.writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
	case errors.Is(err, domain.ErrUserExists):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: "a user with that email already exists"})
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
