package v1

import (
	"net/http"

	"github.com/bella-carwash/bella-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler defines the interface for plans, add-on services and postcode lookups
type CatalogHandler interface {
	ListPlans(ctx *gin.Context)
	GetPlan(ctx *gin.Context)
	CreatePlan(ctx *gin.Context)
	UpdatePlan(ctx *gin.Context)
	DeletePlan(ctx *gin.Context)
	ListExtraServices(ctx *gin.Context)
	CreateExtraService(ctx *gin.Context)
	UpdateExtraService(ctx *gin.Context)
	DeleteExtraService(ctx *gin.Context)
	LookupPostcode(ctx *gin.Context)
}

type catalogHandler struct {
	planService     catalog.PlanService
	extraService    catalog.ExtraServiceService
	postcodeService catalog.PostcodeService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(planService catalog.PlanService, extraService catalog.ExtraServiceService, postcodeService catalog.PostcodeService) CatalogHandler {
	return &catalogHandler{
		planService:     planService,
		extraService:    extraService,
		postcodeService: postcodeService,
	}
}

// ListPlans handles the GET request for purchasable plans
// @Summary List active plans
// @Tags Plans
// @Produce json
// @Success 200 {array} PlanResponse
// @Router /plans [get]
func (handler *catalogHandler) ListPlans(ctx *gin.Context) {
	plans, err := handler.planService.List(ctx, true)
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, newPlanResponse(p))
	}
	respond(ctx, http.StatusOK, out)
}

func (handler *catalogHandler) GetPlan(ctx *gin.Context) {
	plan, err := handler.planService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPlanResponse(plan))
}

func (handler *catalogHandler) CreatePlan(ctx *gin.Context) {
	var request PlanRequest
	if !bind(ctx, &request) {
		return
	}

	plan, err := handler.planService.Create(ctx, request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newPlanResponse(plan))
}

func (handler *catalogHandler) UpdatePlan(ctx *gin.Context) {
	var request PlanRequest
	if !bind(ctx, &request) {
		return
	}

	plan, err := handler.planService.Update(ctx, ctx.Param("id"), request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPlanResponse(plan))
}

// DeletePlan retires a plan. Existing subscriptions keep referencing it.
func (handler *catalogHandler) DeletePlan(ctx *gin.Context) {
	if err := handler.planService.Delete(ctx, ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (handler *catalogHandler) ListExtraServices(ctx *gin.Context) {
	services, err := handler.extraService.List(ctx, true)
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]ExtraServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, newExtraServiceResponse(s))
	}
	respond(ctx, http.StatusOK, out)
}

func (handler *catalogHandler) CreateExtraService(ctx *gin.Context) {
	var request ExtraServiceRequest
	if !bind(ctx, &request) {
		return
	}

	service, err := handler.extraService.Create(ctx, request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newExtraServiceResponse(service))
}

func (handler *catalogHandler) UpdateExtraService(ctx *gin.Context) {
	var request ExtraServiceRequest
	if !bind(ctx, &request) {
		return
	}

	service, err := handler.extraService.Update(ctx, ctx.Param("id"), request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newExtraServiceResponse(service))
}

func (handler *catalogHandler) DeleteExtraService(ctx *gin.Context) {
	if err := handler.extraService.Delete(ctx, ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// LookupPostcode handles the GET request for coverage at a postcode
// @Summary Check coverage and nearby locations
// @Tags Postcodes
// @Produce json
// @Param postcode path string true "UK postcode, any spacing or case"
// @Success 200 {object} PostcodeResponse
// @Failure 400 {object} middleware.ErrorBody
// @Router /postcodes/{postcode} [get]
func (handler *catalogHandler) LookupPostcode(ctx *gin.Context) {
	lookup, err := handler.postcodeService.Lookup(ctx, ctx.Param("postcode"))
	if err != nil {
		fail(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, PostcodeResponse{
		Postcode:    lookup.Postcode,
		OutwardCode: lookup.OutwardCode,
		Covered:     lookup.Covered,
		Region:      lookup.Region,
		Locations:   newLocationResponses(lookup.Locations),
	})
}
