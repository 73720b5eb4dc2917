package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/oCowley/solo-boom/internal/auth"
	"github.com/oCowley/solo-boom/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	session, err := s.sessions.Login(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.writeJSON(w, http.StatusOK, map[string]any{
		"token": session.Token,
		"user":  session.User,
	})
}

// Logout revokes the caller's session.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout(sessionToken(r))

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me reports the current session's user, if any.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user := s.sessions.CurrentUser(sessionToken(r))
	if user == nil {
		s.writeError(w, r, domain.ErrUnauthorized)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser adds a local account. The very first account bootstraps as
// admin without authentication; after that an admin session is required.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and password are required"})
		return
	}

	count, err := s.users.Count(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	role := req.Role
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	if count == 0 {
		role = domain.RoleAdmin
	} else {
		caller := s.sessions.CurrentUser(sessionToken(r))
		if caller == nil {
			s.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		if !caller.IsAdmin() {
			s.writeError(w, r, domain.ErrForbidden)
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.Create(r.Context(), req.Email, hash, role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}
