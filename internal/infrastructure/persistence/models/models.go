package models

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&VerificationCodeModel{},
		&PartnerModel{},
		&LocationModel{},
		&PlanModel{},
		&ExtraServiceModel{},
		&CoverageAreaModel{},
		&SubscriptionModel{},
		&QRCodeModel{},
		&WashVerificationModel{},
		&PaymentModel{},
		&PaymentMethodModel{},
		&WebhookEventModel{},
		&TicketModel{},
	}
}
