package v1

import (
	"net/http"

	"github.com/bella-carwash/bella-api/internal/domain/partners"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// PartnerHandler defines the interface for partner directory, locations and payout accounts
type PartnerHandler interface {
	ListPartners(ctx *gin.Context)
	GetPartner(ctx *gin.Context)
	MyLocations(ctx *gin.Context)
	ListLocations(ctx *gin.Context)
	GetLocation(ctx *gin.Context)
	CreateLocation(ctx *gin.Context)
	UpdateLocation(ctx *gin.Context)
	DeleteLocation(ctx *gin.Context)
	ConnectStatus(ctx *gin.Context)
	LinkAccount(ctx *gin.Context)
}

type partnerHandler struct {
	partnerService  partners.PartnerService
	locationService partners.LocationService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService partners.PartnerService, locationService partners.LocationService) PartnerHandler {
	return &partnerHandler{partnerService: partnerService, locationService: locationService}
}

// ListPartners lists approved partners only.
func (handler *partnerHandler) ListPartners(ctx *gin.Context) {
	limit, offset, ok := pagination(ctx)
	if !ok {
		return
	}

	list, err := handler.partnerService.List(ctx, &partners.PartnerQuery{
		Status: partners.StatusApproved,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPartnerResponses(list))
}

func (handler *partnerHandler) GetPartner(ctx *gin.Context) {
	partner, err := handler.partnerService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	if partner.Status != partners.StatusApproved {
		fail(ctx, apperr.NotFound("Partner not found"))
		return
	}
	respond(ctx, http.StatusOK, newPartnerResponse(partner))
}

func (handler *partnerHandler) MyLocations(ctx *gin.Context) {
	locations, err := handler.locationService.List(ctx, &partners.LocationQuery{PartnerID: principalID(ctx)})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newLocationResponses(locations))
}

// ListLocations handles the GET request for active wash locations
// @Summary List locations
// @Tags Locations
// @Produce json
// @Param postcode query string false "Postcode prefix"
// @Param partnerId query string false "Owning partner"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} LocationResponse
// @Router /locations [get]
func (handler *partnerHandler) ListLocations(ctx *gin.Context) {
	limit, offset, ok := pagination(ctx)
	if !ok {
		return
	}

	locations, err := handler.locationService.List(ctx, &partners.LocationQuery{
		PartnerID:      ctx.Query("partnerId"),
		PostcodePrefix: ctx.Query("postcode"),
		ActiveOnly:     true,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newLocationResponses(locations))
}

func (handler *partnerHandler) GetLocation(ctx *gin.Context) {
	location, err := handler.locationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newLocationResponse(location))
}

func (handler *partnerHandler) CreateLocation(ctx *gin.Context) {
	var request LocationRequest
	if !bind(ctx, &request) {
		return
	}

	location, err := handler.locationService.Create(ctx, principalID(ctx), request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newLocationResponse(location))
}

func (handler *partnerHandler) UpdateLocation(ctx *gin.Context) {
	var request LocationRequest
	if !bind(ctx, &request) {
		return
	}

	location, err := handler.locationService.Update(ctx, principalID(ctx), ctx.Param("id"), request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newLocationResponse(location))
}

func (handler *partnerHandler) DeleteLocation(ctx *gin.Context) {
	if err := handler.locationService.Delete(ctx, principalID(ctx), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (handler *partnerHandler) ConnectStatus(ctx *gin.Context) {
	status, err := handler.partnerService.ConnectStatus(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, ConnectStatusResponse{Connected: status.Connected, AccountID: status.StripeAccountID})
}

// LinkAccount stores the partner's connected account id. The account itself
// is created on the provider's hosted onboarding flow.
func (handler *partnerHandler) LinkAccount(ctx *gin.Context) {
	var request ConnectAccountRequest
	if !bind(ctx, &request) {
		return
	}

	status, err := handler.partnerService.LinkStripeAccount(ctx, principalID(ctx), request.AccountID)
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, ConnectStatusResponse{Connected: status.Connected, AccountID: status.StripeAccountID})
}
