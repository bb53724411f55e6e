package admin

import (
	"context"
)

// Stats is the dashboard snapshot shown to administrators.
type Stats struct {
	Users                int64
	PartnersByStatus     map[string]int64
	SubscriptionByStatus map[string]int64
	OpenTickets          int64
	WashesLast30Days     int64
}

// StatsService computes platform statistics.
type StatsService interface {
	Stats(ctx context.Context) (*Stats, error)
}
