package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oCowley/solo-boom/internal/config"
	"github.com/oCowley/solo-boom/internal/domain"
	"github.com/oCowley/solo-boom/internal/repository"
)

func newTestSessions(t *testing.T, ttl time.Duration) *Sessions {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)

	users := repository.NewUserStore(db, zerolog.Nop())

	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	_, err = users.Create(context.Background(), "admin@example.com", hash, domain.RoleAdmin)
	require.NoError(t, err)

	return NewSessions(users, &config.Config{SessionTTL: ttl}, zerolog.Nop())
}

func TestSessions_LoginAndCurrentUser(t *testing.T) {
	t.Parallel()

	sessions := newTestSessions(t, time.Hour)

	session, err := sessions.Login(context.Background(), "admin@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	user := sessions.CurrentUser(session.Token)
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.True(t, user.IsAdmin())
}

func TestSessions_BadCredentials(t *testing.T) {
	t.Parallel()

	sessions := newTestSessions(t, time.Hour)
	ctx := context.Background()

	// Unknown email and wrong password fail identically.
	_, err := sessions.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)

	_, err = sessions.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestSessions_Logout(t *testing.T) {
	t.Parallel()

	sessions := newTestSessions(t, time.Hour)

	session, err := sessions.Login(context.Background(), "admin@example.com", "hunter22")
	require.NoError(t, err)

	sessions.Logout(session.Token)
	assert.Nil(t, sessions.CurrentUser(session.Token))

	// Revoking again is a no-op.
	sessions.Logout(session.Token)
}

func TestSessions_Expiry(t *testing.T) {
	t.Parallel()

	sessions := newTestSessions(t, -time.Minute)

	session, err := sessions.Login(context.Background(), "admin@example.com", "hunter22")
	require.NoError(t, err)

	assert.Nil(t, sessions.CurrentUser(session.Token))
}

func TestSessions_UnknownOrEmptyToken(t *testing.T) {
	t.Parallel()

	sessions := newTestSessions(t, time.Hour)
	assert.Nil(t, sessions.CurrentUser(""))
	assert.Nil(t, sessions.CurrentUser("not-a-token"))
}

func TestSessions_OnSessionChange(t *testing.T) {
	t.Parallel()

	sessions := newTestSessions(t, time.Hour)

	var events []Event
	unsubscribe := sessions.OnSessionChange(func(e Event) {
		events = append(events, e)
	})

	session, err := sessions.Login(context.Background(), "admin@example.com", "hunter22")
	require.NoError(t, err)
	sessions.Logout(session.Token)

	require.Len(t, events, 2)
	assert.Equal(t, EventLogin, events[0].Type)
	assert.Equal(t, "admin@example.com", events[0].User.Email)
	assert.Equal(t, EventLogout, events[1].Type)

	unsubscribe()

	_, err = sessions.Login(context.Background(), "admin@example.com", "hunter22")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
