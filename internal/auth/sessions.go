// Package auth manages local credentials and login sessions. Session state
// lives in an explicit manager passed to handlers, never in package globals;
// interested components subscribe to session-change events instead of
// polling shared state.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oCowley/solo-boom/internal/config"
	"github.com/oCowley/solo-boom/internal/constants"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/repository"
)

// EventType tags a session-change notification.
type EventType string

const (
	EventLogin  EventType = "login"
	EventLogout EventType = "logout"
)

// Event describes one session change.
type Event struct {
	Type EventType
	User domain.User
}

// Session is one authenticated login.
type Session struct {
	Token     string
	User      domain.User
	ExpiresAt time.Time
}

// Sessions issues, resolves and revokes login sessions.
type Sessions struct {
	users  *repository.UserStore
	ttl    time.Duration
	logger zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func NewSessions(users *repository.UserStore, cfg *config.Config, logger zerolog.Logger) *Sessions {
	return &Sessions{
		users:    users,
		ttl:      cfg.SessionTTL,
		logger:   logger,
		sessions: make(map[string]*Session),
		subs:     make(map[int]func(Event)),
	}
}

// HashPassword produces a bcrypt hash suitable for the user store.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Sessions) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}

	token, err := gonanoid.New(constants.SessionTokenLength)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:     token,
		User:      *user,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	s.notify(Event{Type: EventLogin, User: session.User})
	return session, nil
}

// Logout revokes the session for the given token, if any.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if ok {
		delete(s.sessions, token)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Info().Str("user_id", session.User.ID).Msg("user logged out")
		s.notify(Event{Type: EventLogout, User: session.User})
	}
}

// CurrentUser returns the user behind a session token, or nil when the token
// is unknown or expired. Expired sessions are pruned on sight.
func (s *Sessions) CurrentUser(token string) *domain.User {
	if token == "" {
		return nil
	}

	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	if time.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil
	}

	user := session.User
	return &user
}

// OnSessionChange registers fn for login/logout events and returns an
// unsubscribe func. Callbacks run synchronously on the mutating goroutine.
func (s *Sessions) OnSessionChange(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Sessions) notify(event Event) {
	s.subMu.Lock()
	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}
