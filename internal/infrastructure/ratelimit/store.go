// Package ratelimit counts requests per client key against a fixed ceiling.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of taking one request from a key's allowance.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Store tracks request allowances per key.
type Store interface {
	Take(ctx context.Context, key string) (Result, error)
}
