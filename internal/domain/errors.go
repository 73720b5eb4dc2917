package domain

import "errors"

// Domain errors
var (
	ErrInvalidHandle  = errors.New("invalid player handle")
	ErrInvalidRegion  = errors.New("unknown region")
	ErrDuplicateEntry = errors.New("leaderboard entry already exists")
	ErrEntryNotFound  = errors.New("leaderboard entry not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("admin access required")
)
