package v1

import (
	"net/http"

	"github.com/bella-carwash/bella-api/internal/api/rest/middleware"
	"github.com/bella-carwash/bella-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the provider's webhook signature.
const SignatureHeader = "Stripe-Signature"

// BillingHandler defines the interface for payments, cards, billing overview and provider webhooks
type BillingHandler interface {
	ListPayments(ctx *gin.Context)
	GetPayment(ctx *gin.Context)
	ListPaymentMethods(ctx *gin.Context)
	AddPaymentMethod(ctx *gin.Context)
	SetDefaultPaymentMethod(ctx *gin.Context)
	RemovePaymentMethod(ctx *gin.Context)
	Summary(ctx *gin.Context)
	History(ctx *gin.Context)
	Webhook(ctx *gin.Context)
}

type billingHandler struct {
	paymentService       billing.PaymentService
	paymentMethodService billing.PaymentMethodService
	billingService       billing.BillingService
	webhookService       billing.WebhookService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(
	paymentService billing.PaymentService,
	paymentMethodService billing.PaymentMethodService,
	billingService billing.BillingService,
	webhookService billing.WebhookService,
) BillingHandler {
	return &billingHandler{
		paymentService:       paymentService,
		paymentMethodService: paymentMethodService,
		billingService:       billingService,
		webhookService:       webhookService,
	}
}

func (handler *billingHandler) ListPayments(ctx *gin.Context) {
	payments, err := handler.paymentService.List(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPaymentResponses(payments))
}

func (handler *billingHandler) GetPayment(ctx *gin.Context) {
	payment, err := handler.paymentService.GetByID(ctx, principalID(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPaymentResponse(payment))
}

func (handler *billingHandler) ListPaymentMethods(ctx *gin.Context) {
	methods, err := handler.paymentMethodService.List(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, newPaymentMethodResponse(m))
	}
	respond(ctx, http.StatusOK, out)
}

func (handler *billingHandler) AddPaymentMethod(ctx *gin.Context) {
	var request PaymentMethodRequest
	if !bind(ctx, &request) {
		return
	}

	method, err := handler.paymentMethodService.Add(ctx, principalID(ctx), request.toInput())
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newPaymentMethodResponse(method))
}

func (handler *billingHandler) SetDefaultPaymentMethod(ctx *gin.Context) {
	method, err := handler.paymentMethodService.SetDefault(ctx, principalID(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPaymentMethodResponse(method))
}

func (handler *billingHandler) RemovePaymentMethod(ctx *gin.Context) {
	if err := handler.paymentMethodService.Remove(ctx, principalID(ctx), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Summary handles the GET request for the customer's billing overview
// @Summary Billing summary
// @Tags Billing
// @Produce json
// @Success 200 {object} BillingSummaryResponse
// @Router /billing/summary [get]
func (handler *billingHandler) Summary(ctx *gin.Context) {
	summary, err := handler.billingService.Summary(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newBillingSummaryResponse(summary))
}

func (handler *billingHandler) History(ctx *gin.Context) {
	payments, err := handler.billingService.History(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newPaymentResponses(payments))
}

// Webhook receives provider events. The signature covers the exact request
// bytes, so the body buffered by middleware.RawBody is used instead of a
// decoded payload.
func (handler *billingHandler) Webhook(ctx *gin.Context) {
	result, err := handler.webhookService.Handle(ctx, middleware.GetRawBody(ctx), ctx.GetHeader(SignatureHeader))
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, WebhookResponse{
		Received:  true,
		EventID:   result.EventID,
		Duplicate: result.Duplicate,
		Handled:   result.Handled,
	})
}
