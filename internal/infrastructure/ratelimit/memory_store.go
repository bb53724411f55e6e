package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// MemoryStore is a process-local fixed-window counter per key. Each key may take
// max requests in a window that opens with its first request; the counter resets
// once the window has elapsed.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	length  time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore allowing max requests per window.
func NewMemoryStore(max int, length time.Duration) *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		max:     max,
		length:  length,
		now:     time.Now,
	}
}

func (s *MemoryStore) Take(_ context.Context, key string) (Result, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.start.Add(s.length)) {
		w = &window{start: now}
		s.windows[key] = w
	}
	w.count++

	if w.count <= s.max {
		return Result{Allowed: true, Limit: s.max, Remaining: s.max - w.count}, nil
	}
	// Rejected requests still count, matching the Redis store's INCR.
	return Result{Allowed: false, Limit: s.max, RetryAfter: w.start.Add(s.length).Sub(now)}, nil
}

// Sweep forgets keys whose window has elapsed. Their next request opens a new
// window, so dropping them changes nothing.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, w := range s.windows {
		if !now.Before(w.start.Add(s.length)) {
			delete(s.windows, key)
			removed++
		}
	}
	return removed
}

// Run sweeps expired keys every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
