package app

import (
	"context"
	"time"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/admin"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"
	"github.com/bella-carwash/bella-api/internal/domain/support"
)

const statsWashWindow = 30 * 24 * time.Hour

// statsService implements admin.StatsService
type statsService struct {
	users         accounts.UserRepository
	partners      partners.PartnerRepository
	subs          subscriptions.SubscriptionRepository
	tickets       support.TicketRepository
	verifications subscriptions.VerificationRepository
	now           func() time.Time
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(
	users accounts.UserRepository,
	partnerRepo partners.PartnerRepository,
	subs subscriptions.SubscriptionRepository,
	tickets support.TicketRepository,
	verifications subscriptions.VerificationRepository,
	now func() time.Time,
) admin.StatsService {
	return &statsService{
		users:         users,
		partners:      partnerRepo,
		subs:          subs,
		tickets:       tickets,
		verifications: verifications,
		now:           now,
	}
}

func (s *statsService) Stats(ctx context.Context) (*admin.Stats, error) {
	var (
		stats admin.Stats
		err   error
	)

	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PartnersByStatus, err = s.partners.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.SubscriptionByStatus, err = s.subs.CountByStatus(ctx); err != nil {
		return nil, err
	}

	tickets, err := s.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.OpenTickets = tickets[support.StatusOpen]

	if stats.WashesLast30Days, err = s.verifications.CountSince(ctx, s.now().Add(-statsWashWindow)); err != nil {
		return nil, err
	}
	return &stats, nil
}
