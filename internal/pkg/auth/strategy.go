package auth

import "time"

// Strategy issues and verifies auth tokens carrying a user id.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

// Options tune token issuing.
type Options struct {
	TTL time.Duration
}
