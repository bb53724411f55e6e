//go:build integration
// +build integration

package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"
	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/domain/support"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_DeleteDeactivates(t *testing.T) {
	svc := SetupSqliteServices(t)
	ctx := context.Background()

	plan, err := svc.Plans.Create(ctx, catalog.PlanInput{Name: "Premium", PriceCents: 2999, Currency: "GBP", Interval: catalog.IntervalMonth})
	require.NoError(t, err)
	assert.Equal(t, "gbp", plan.Currency)
	assert.True(t, plan.Active)
	assert.True(t, plan.Unlimited())

	require.NoError(t, svc.Plans.Delete(ctx, plan.ID))

	active, err := svc.Plans.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.Plans.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.Plans.Create(ctx, catalog.PlanInput{Name: "Bad", Interval: "week"})
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)
}

func TestExtraServiceService_CRUD(t *testing.T) {
	svc := SetupSqliteServices(t)
	ctx := context.Background()

	extra, err := svc.ExtraServices.Create(ctx, catalog.ExtraServiceInput{Name: "Wax", PriceCents: 500})
	require.NoError(t, err)

	updated, err := svc.ExtraServices.Update(ctx, extra.ID, catalog.ExtraServiceInput{Name: "Hot wax", PriceCents: 700})
	require.NoError(t, err)
	assert.Equal(t, "Hot wax", updated.Name)

	require.NoError(t, svc.ExtraServices.Delete(ctx, extra.ID))
	active, err := svc.ExtraServices.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestPostcodeService_Lookup(t *testing.T) {
	f := setupWashFixture(t, 4)
	ctx := context.Background()
	require.NoError(t, f.svc.DBContext.Repos.Coverage.Upsert(ctx, &catalog.CoverageArea{OutwardCode: "SW1A", Region: "Westminster", Active: true}))

	lookup, err := f.svc.Postcodes.Lookup(ctx, " sw1a 2aa ")
	require.NoError(t, err)
	assert.Equal(t, "SW1A 2AA", lookup.Postcode)
	assert.Equal(t, "SW1A", lookup.OutwardCode)
	assert.True(t, lookup.Covered)
	assert.Equal(t, "Westminster", lookup.Region)
	require.Len(t, lookup.Locations, 1)
	assert.Equal(t, f.location.ID, lookup.Locations[0].ID)

	uncovered, err := f.svc.Postcodes.Lookup(ctx, "M1 1AE")
	require.NoError(t, err)
	assert.False(t, uncovered.Covered)
	assert.Empty(t, uncovered.Locations)

	_, err = f.svc.Postcodes.Lookup(ctx, "not a postcode")
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)
}

func TestLocationService_Ownership(t *testing.T) {
	f := setupWashFixture(t, 4)
	ctx := context.Background()

	other, _, err := f.svc.PartnerAuth.Register(ctx, partners.RegisterInput{Email: "rival@example.com", Password: "partner-pass", BusinessName: "Rival"})
	require.NoError(t, err)

	err = f.svc.Locations.Delete(ctx, other.ID, f.location.ID)
	assert.Equal(t, http.StatusForbidden, apperr.From(err).Status)

	inactive := false
	updated, err := f.svc.Locations.Update(ctx, f.partner.ID, f.location.ID, partners.LocationInput{
		Name: "Central", AddressLine: "1 High Street", City: "London", Postcode: "SW1A 1AA", Active: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestPartnerService_StatusAndConnect(t *testing.T) {
	f := setupWashFixture(t, 4)
	ctx := context.Background()

	_, err := f.svc.Partners.SetStatus(ctx, f.partner.ID, "banned")
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)

	status, err := f.svc.Partners.ConnectStatus(ctx, f.partner.ID)
	require.NoError(t, err)
	assert.False(t, status.Connected)

	_, err = f.svc.Partners.LinkStripeAccount(ctx, f.partner.ID, "bogus")
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)

	status, err = f.svc.Partners.LinkStripeAccount(ctx, f.partner.ID, "acct_123")
	require.NoError(t, err)
	assert.True(t, status.Connected)

	_, err = f.svc.Partners.SetStatus(ctx, f.partner.ID, partners.StatusSuspended)
	require.NoError(t, err)
	_, _, err = f.svc.PartnerAuth.Login(ctx, "partner@example.com", "partner-pass")
	assert.Equal(t, http.StatusForbidden, apperr.From(err).Status)
}

func TestTicketServiceAndStats(t *testing.T) {
	f := setupWashFixture(t, 4)
	ctx := context.Background()

	ticket, err := f.svc.Tickets.Open(ctx, f.userID, "Broken brush", "Bay 2 brush is broken")
	require.NoError(t, err)
	assert.Equal(t, support.StatusOpen, ticket.Status)

	stats, err := f.svc.Stats.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.OpenTickets)
	assert.Equal(t, int64(1), stats.PartnersByStatus[partners.StatusApproved])

	closed, err := f.svc.Tickets.Close(ctx, f.userID, ticket.ID)
	require.NoError(t, err)
	assert.NotNil(t, closed.ClosedAt)

	_, err = f.svc.Tickets.Close(ctx, f.userID, ticket.ID)
	assert.Equal(t, http.StatusConflict, apperr.From(err).Status)

	_, err = f.svc.Tickets.Open(ctx, f.userID, "x", "")
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)
}
