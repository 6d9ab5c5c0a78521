package internal

import (
	"net/http"

	"fitbook/internal/controllers"
	"fitbook/internal/providers"
)

func InitRoutes(publicController *controllers.PublicController, adminController *controllers.AdminController, webhookController *controllers.WebhookController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/public/state", http.HandlerFunc(publicController.GetState))
	routers.Get("/api/public/confirm", http.HandlerFunc(publicController.Confirm))
	routers.Post("/api/public/create-checkout-session", http.HandlerFunc(publicController.CreateCheckoutSession))
	routers.Put("/api/admin/state", http.HandlerFunc(adminController.UpdateState))
	routers.Get("/api/admin/bookings", http.HandlerFunc(adminController.ListBookings))
	routers.Post("/api/stripe/webhook", http.HandlerFunc(webhookController.Handle))
	return routers
}
