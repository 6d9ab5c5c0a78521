//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"fitbook/internal"
	"fitbook/internal/controllers"
	"fitbook/internal/payment"
	"fitbook/internal/providers"
	"fitbook/internal/services"
	"fitbook/internal/store"
	"fitbook/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		store.NewInstrumentedStateStore,
		payment.NewStripeProvider,
		services.NewStateService,
		services.NewBookingService,
		controllers.NewPublicController,
		controllers.NewAdminController,
		controllers.NewWebhookController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
