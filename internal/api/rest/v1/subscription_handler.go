package v1

import (
	"net/http"

	"github.com/bella-carwash/bella-api/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler defines the interface for subscriptions, QR codes and wash verifications
type SubscriptionHandler interface {
	List(ctx *gin.Context)
	Subscribe(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	IssueQRCode(ctx *gin.Context)
	InspectQRCode(ctx *gin.Context)
	Verify(ctx *gin.Context)
	ListVerifications(ctx *gin.Context)
}

type subscriptionHandler struct {
	subscriptionService subscriptions.SubscriptionService
	qrCodeService       subscriptions.QRCodeService
	verificationService subscriptions.WashVerificationService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(
	subscriptionService subscriptions.SubscriptionService,
	qrCodeService subscriptions.QRCodeService,
	verificationService subscriptions.WashVerificationService,
) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		qrCodeService:       qrCodeService,
		verificationService: verificationService,
	}
}

func (handler *subscriptionHandler) List(ctx *gin.Context) {
	subs, err := handler.subscriptionService.List(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, newSubscriptionResponse(s))
	}
	respond(ctx, http.StatusOK, out)
}

// Subscribe handles the POST request to start a subscription
// @Summary Subscribe to a plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param requestBody body SubscribeRequest true "Plan reference"
// @Success 201 {object} SubscriptionResponse
// @Failure 409 {object} middleware.ErrorBody
// @Router /subscriptions [post]
func (handler *subscriptionHandler) Subscribe(ctx *gin.Context) {
	var request SubscribeRequest
	if !bind(ctx, &request) {
		return
	}

	sub, err := handler.subscriptionService.Subscribe(ctx, principalID(ctx), subscriptions.SubscribeInput{
		PlanID:                 request.PlanID,
		ProviderSubscriptionID: request.ProviderSubscriptionID,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newSubscriptionResponse(sub))
}

func (handler *subscriptionHandler) GetByID(ctx *gin.Context) {
	sub, err := handler.subscriptionService.GetByID(ctx, principalID(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newSubscriptionResponse(sub))
}

func (handler *subscriptionHandler) Cancel(ctx *gin.Context) {
	sub, err := handler.subscriptionService.Cancel(ctx, principalID(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newSubscriptionResponse(sub))
}

func (handler *subscriptionHandler) IssueQRCode(ctx *gin.Context) {
	code, err := handler.qrCodeService.Issue(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, QRCodeResponse{
		Code:           code.Code,
		SubscriptionID: code.SubscriptionID,
		ExpiresAt:      code.ExpiresAt,
	})
}

// InspectQRCode lets a partner check a token before redeeming it.
func (handler *subscriptionHandler) InspectQRCode(ctx *gin.Context) {
	status, err := handler.qrCodeService.Inspect(ctx, ctx.Param("code"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, QRCodeStatusResponse{
		Code:            status.Code,
		Valid:           status.Valid,
		Reason:          status.Reason,
		SubscriptionID:  status.SubscriptionID,
		PlanName:        status.PlanName,
		WashesRemaining: status.WashesRemaining,
		ExpiresAt:       status.ExpiresAt,
	})
}

// Verify handles the POST request that redeems a QR code for one wash
// @Summary Record a wash
// @Tags Verifications
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Scanned code and location"
// @Success 201 {object} VerificationResponse
// @Failure 400 {object} middleware.ErrorBody
// @Failure 403 {object} middleware.ErrorBody
// @Failure 409 {object} middleware.ErrorBody
// @Router /verifications [post]
func (handler *subscriptionHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bind(ctx, &request) {
		return
	}

	verification, err := handler.verificationService.Verify(ctx, principalID(ctx), subscriptions.VerifyInput{
		Code:       request.Code,
		LocationID: request.LocationID,
		Notes:      request.Notes,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newVerificationResponse(verification))
}

func (handler *subscriptionHandler) ListVerifications(ctx *gin.Context) {
	limit, offset, ok := pagination(ctx)
	if !ok {
		return
	}

	list, err := handler.verificationService.List(ctx, &subscriptions.VerificationQuery{
		PartnerID:  principalID(ctx),
		LocationID: ctx.Query("locationId"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]VerificationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, newVerificationResponse(v))
	}
	respond(ctx, http.StatusOK, out)
}
