package v1

import (
	"net/http"

	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/domain/partners"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for customer and partner authentication
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	PartnerRegister(ctx *gin.Context)
	PartnerLogin(ctx *gin.Context)
	PartnerMe(ctx *gin.Context)
	SendCode(ctx *gin.Context)
	ConfirmCode(ctx *gin.Context)
}

type authHandler struct {
	authService        accounts.AuthService
	userService        accounts.UserService
	codeService        accounts.VerificationCodeService
	partnerAuthService partners.PartnerAuthService
	partnerService     partners.PartnerService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	authService accounts.AuthService,
	userService accounts.UserService,
	codeService accounts.VerificationCodeService,
	partnerAuthService partners.PartnerAuthService,
	partnerService partners.PartnerService,
) AuthHandler {
	return &authHandler{
		authService:        authService,
		userService:        userService,
		codeService:        codeService,
		partnerAuthService: partnerAuthService,
		partnerService:     partnerService,
	}
}

// Register handles the POST request to create a customer account
// @Summary Register a customer
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RegisterRequest true "Account data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} middleware.ErrorBody
// @Failure 409 {object} middleware.ErrorBody
// @Router /auth/register [post]
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if !bind(ctx, &request) {
		return
	}

	user, token, err := handler.authService.Register(ctx, request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}

	resp := newUserResponse(user)
	respond(ctx, http.StatusCreated, AuthResponse{Token: token, User: &resp})
}

// Login handles the POST request to sign a customer in
// @Summary Customer login
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} middleware.ErrorBody
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bind(ctx, &request) {
		return
	}

	user, token, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		fail(ctx, err)
		return
	}

	resp := newUserResponse(user)
	respond(ctx, http.StatusOK, AuthResponse{Token: token, User: &resp})
}

// Me returns the signed-in customer
func (handler *authHandler) Me(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newUserResponse(user))
}

// PartnerRegister handles the POST request to apply as a partner
// @Summary Register a partner business
// @Tags PartnerAuth
// @Accept json
// @Produce json
// @Success 201 {object} AuthResponse
// @Router /partner-auth/register [post]
func (handler *authHandler) PartnerRegister(ctx *gin.Context) {
	var request PartnerRegisterRequest
	if !bind(ctx, &request) {
		return
	}

	partner, token, err := handler.partnerAuthService.Register(ctx, request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}

	resp := newPartnerResponse(partner)
	respond(ctx, http.StatusCreated, AuthResponse{Token: token, Partner: &resp})
}

// PartnerLogin handles the POST request to sign a partner in
func (handler *authHandler) PartnerLogin(ctx *gin.Context) {
	var request LoginRequest
	if !bind(ctx, &request) {
		return
	}

	partner, token, err := handler.partnerAuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		fail(ctx, err)
		return
	}

	resp := newPartnerResponse(partner)
	respond(ctx, http.StatusOK, AuthResponse{Token: token, Partner: &resp})
}

func (handler *authHandler) PartnerMe(ctx *gin.Context) {
	partner, err := handler.partnerService.GetByID(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPartnerResponse(partner))
}

// SendCode issues a six digit code to the given address. The code itself is
// never part of the response.
func (handler *authHandler) SendCode(ctx *gin.Context) {
	var request SendCodeRequest
	if !bind(ctx, &request) {
		return
	}

	code, err := handler.codeService.Send(ctx, request.Email, request.Purpose)
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusAccepted, gin.H{"sent": true, "expiresAt": code.ExpiresAt})
}

func (handler *authHandler) ConfirmCode(ctx *gin.Context) {
	var request ConfirmCodeRequest
	if !bind(ctx, &request) {
		return
	}

	if err := handler.codeService.Confirm(ctx, request.Email, request.Purpose, request.Code); err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, gin.H{"verified": true})
}
