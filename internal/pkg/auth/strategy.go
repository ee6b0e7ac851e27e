package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, or malformed. Callers never see the reason.
var ErrInvalidToken = errors.New("invalid auth token")

const defaultTTL = 24 * time.Hour

// Claims carries the identity encoded inside an issued token.
type Claims struct {
	UserID int64
	Email  string
}

// Strategy issues and verifies signed, time-bounded bearer tokens.
type Strategy interface {
	IssueToken(userID int64, email string) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
