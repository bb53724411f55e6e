package v1

import (
	"github.com/bella-carwash/bella-api/internal/api/rest/middleware"
	"github.com/bella-carwash/bella-api/internal/app"
	"github.com/bella-carwash/bella-api/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts every route group under BasePath.
func SetupRoutes(r gin.IRouter, services *app.Services, tokens accounts.TokenIssuer) {
	api := r.Group(BasePath)

	customer := middleware.RequireAuth(tokens, accounts.KindUser, accounts.KindAdmin)
	partner := middleware.RequireAuth(tokens, accounts.KindPartner)
	adminOnly := middleware.RequireAuth(tokens, accounts.KindAdmin)

	authHandler := NewAuthHandler(services.Auth, services.Users, services.VerificationCodes, services.PartnerAuth, services.Partners)
	userHandler := NewUserHandler(services.Users)
	adminHandler := NewAdminHandler(services.Stats, services.Users, services.Partners)
	catalogHandler := NewCatalogHandler(services.Plans, services.ExtraServices, services.Postcodes)
	partnerHandler := NewPartnerHandler(services.Partners, services.Locations)
	subscriptionHandler := NewSubscriptionHandler(services.Subscriptions, services.QRCodes, services.Verifications)
	billingHandler := NewBillingHandler(services.Payments, services.PaymentMethods, services.Billing, services.Webhooks)
	supportHandler := NewSupportHandler(services.Tickets)

	// Auth Routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", customer, authHandler.Me)

	partnerAuth := api.Group("/partner-auth")
	partnerAuth.POST("/register", authHandler.PartnerRegister)
	partnerAuth.POST("/login", authHandler.PartnerLogin)
	partnerAuth.GET("/me", partner, authHandler.PartnerMe)

	verification := api.Group("/verification")
	verification.POST("/send", authHandler.SendCode)
	verification.POST("/confirm", authHandler.ConfirmCode)

	// Admin Routes
	adminGroup := api.Group("/admin", adminOnly)
	adminGroup.GET("/stats", adminHandler.Stats)
	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.GET("/partners", adminHandler.ListPartners)
	adminGroup.PATCH("/partners/:id/status", adminHandler.SetPartnerStatus)

	users := api.Group("/users", customer)
	users.GET("/me", userHandler.GetMe)
	users.PUT("/me", userHandler.UpdateMe)
	users.DELETE("/me", userHandler.DeleteMe)

	// Catalog Routes
	plans := api.Group("/plans")
	plans.GET("", catalogHandler.ListPlans)
	plans.GET("/:id", catalogHandler.GetPlan)
	plans.POST("", adminOnly, catalogHandler.CreatePlan)
	plans.PUT("/:id", adminOnly, catalogHandler.UpdatePlan)
	plans.DELETE("/:id", adminOnly, catalogHandler.DeletePlan)

	extras := api.Group("/extra-services")
	extras.GET("", catalogHandler.ListExtraServices)
	extras.POST("", adminOnly, catalogHandler.CreateExtraService)
	extras.PUT("/:id", adminOnly, catalogHandler.UpdateExtraService)
	extras.DELETE("/:id", adminOnly, catalogHandler.DeleteExtraService)

	api.GET("/postcodes/:postcode", catalogHandler.LookupPostcode)

	// Partner Routes
	partnersGroup := api.Group("/partners")
	partnersGroup.GET("", partnerHandler.ListPartners)
	partnersGroup.GET("/me/locations", partner, partnerHandler.MyLocations)
	partnersGroup.GET("/:id", partnerHandler.GetPartner)

	locations := api.Group("/locations")
	locations.GET("", partnerHandler.ListLocations)
	locations.GET("/:id", partnerHandler.GetLocation)
	locations.POST("", partner, partnerHandler.CreateLocation)
	locations.PUT("/:id", partner, partnerHandler.UpdateLocation)
	locations.DELETE("/:id", partner, partnerHandler.DeleteLocation)

	connect := api.Group("/stripe-connect", partner)
	connect.GET("/status", partnerHandler.ConnectStatus)
	connect.POST("/account", partnerHandler.LinkAccount)

	// Subscription Routes
	subs := api.Group("/subscriptions", customer)
	subs.GET("", subscriptionHandler.List)
	subs.POST("", subscriptionHandler.Subscribe)
	subs.GET("/:id", subscriptionHandler.GetByID)
	subs.POST("/:id/cancel", subscriptionHandler.Cancel)

	qrCodes := api.Group("/qr-codes")
	qrCodes.POST("", customer, subscriptionHandler.IssueQRCode)
	qrCodes.GET("/:code", partner, subscriptionHandler.InspectQRCode)

	verifications := api.Group("/verifications", partner)
	verifications.POST("", subscriptionHandler.Verify)
	verifications.GET("", subscriptionHandler.ListVerifications)

	// Billing Routes
	payments := api.Group("/payments", customer)
	payments.GET("", billingHandler.ListPayments)
	payments.GET("/:id", billingHandler.GetPayment)

	methods := api.Group("/payment-methods", customer)
	methods.GET("", billingHandler.ListPaymentMethods)
	methods.POST("", billingHandler.AddPaymentMethod)
	methods.PUT("/:id/default", billingHandler.SetDefaultPaymentMethod)
	methods.DELETE("/:id", billingHandler.RemovePaymentMethod)

	billingGroup := api.Group("/billing", customer)
	billingGroup.GET("/summary", billingHandler.Summary)
	billingGroup.GET("/history", billingHandler.History)

	api.POST("/webhooks/stripe", billingHandler.Webhook)

	// Support Routes
	tickets := api.Group("/support/tickets", customer)
	tickets.POST("", supportHandler.Open)
	tickets.GET("", supportHandler.List)
	tickets.GET("/:id", supportHandler.GetByID)
	tickets.POST("/:id/close", supportHandler.Close)
}
