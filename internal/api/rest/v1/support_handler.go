package v1

import (
	"net/http"

	"github.com/bella-carwash/bella-api/internal/domain/support"

	"github.com/gin-gonic/gin"
)

// SupportHandler defines the interface for customer support tickets
type SupportHandler interface {
	Open(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Close(ctx *gin.Context)
}

type supportHandler struct {
	ticketService support.TicketService
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(ticketService support.TicketService) SupportHandler {
	return &supportHandler{ticketService: ticketService}
}

func (handler *supportHandler) Open(ctx *gin.Context) {
	var request TicketRequest
	if !bind(ctx, &request) {
		return
	}

	ticket, err := handler.ticketService.Open(ctx, principalID(ctx), request.Subject, request.Message)
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, newTicketResponse(ticket))
}

func (handler *supportHandler) List(ctx *gin.Context) {
	tickets, err := handler.ticketService.List(ctx, principalID(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}

	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, newTicketResponse(t))
	}
	respond(ctx, http.StatusOK, out)
}

func (handler *supportHandler) GetByID(ctx *gin.Context) {
	ticket, err := handler.ticketService.GetByID(ctx, principalID(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newTicketResponse(ticket))
}

func (handler *supportHandler) Close(ctx *gin.Context) {
	ticket, err := handler.ticketService.Close(ctx, principalID(ctx), ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, newTicketResponse(ticket))
}
