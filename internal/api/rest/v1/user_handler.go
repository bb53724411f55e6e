package v1

import (
	"net/http"
	"strings"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/admin"
	"github.com/bella-carwash/bella-api/internal/domain/partners"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for the customer's own account
type UserHandler interface {
	GetMe(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	DeleteMe(ctx *gin.Context)
}

type userHandler struct {
	userService accounts.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService accounts.UserService) UserHandler {
	return &userHandler{userService: userService}
}

func (handler *userHandler) GetMe(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newUserResponse(user))
}

// UpdateMe applies a partial profile update
// @Summary Update my profile
// @Tags Users
// @Accept json
// @Produce json
// @Param requestBody body ProfileRequest true "Profile fields"
// @Success 200 {object} UserResponse
// @Router /users/me [put]
func (handler *userHandler) UpdateMe(ctx *gin.Context) {
	var request ProfileRequest
	if !bind(ctx, &request) {
		return
	}

	user, err := handler.userService.UpdateProfile(ctx, principalID(ctx), accounts.ProfileUpdate{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newUserResponse(user))
}

func (handler *userHandler) DeleteMe(ctx *gin.Context) {
	if err := handler.userService.DeleteByID(ctx, principalID(ctx)); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AdminHandler defines the interface for back-office operations
type AdminHandler interface {
	Stats(ctx *gin.Context)
	ListUsers(ctx *gin.Context)
	ListPartners(ctx *gin.Context)
	SetPartnerStatus(ctx *gin.Context)
}

type adminHandler struct {
	statsService   admin.StatsService
	userService    accounts.UserService
	partnerService partners.PartnerService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(statsService admin.StatsService, userService accounts.UserService, partnerService partners.PartnerService) AdminHandler {
	return &adminHandler{statsService: statsService, userService: userService, partnerService: partnerService}
}

func (handler *adminHandler) Stats(ctx *gin.Context) {
	stats, err := handler.statsService.Stats(ctx)
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newStatsResponse(stats))
}

// ListUsers handles the GET request to search customer accounts
// @Summary List users
// @Tags Admin
// @Produce json
// @Param search query string false "Email or name fragment"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} UserResponse
// @Router /admin/users [get]
func (handler *adminHandler) ListUsers(ctx *gin.Context) {
	limit, offset, ok := pagination(ctx)
	if !ok {
		return
	}

	users, err := handler.userService.List(ctx, &accounts.UserQuery{
		Search: strings.TrimSpace(ctx.Query("search")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	respond(ctx, http.StatusOK, out)
}

func (handler *adminHandler) ListPartners(ctx *gin.Context) {
	limit, offset, ok := pagination(ctx)
	if !ok {
		return
	}

	list, err := handler.partnerService.List(ctx, &partners.PartnerQuery{
		Status: ctx.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPartnerResponses(list))
}

func (handler *adminHandler) SetPartnerStatus(ctx *gin.Context) {
	var request PartnerStatusRequest
	if !bind(ctx, &request) {
		return
	}

	partner, err := handler.partnerService.SetStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPartnerResponse(partner))
}

func newPartnerResponses(in []*partners.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(in))
	for _, p := range in {
		out = append(out, newPartnerResponse(p))
	}
	return out
}
