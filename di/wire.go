//go:build wireinject
// +build wireinject

package di

import (
	"buslink/config"
	"buslink/helper"
	"buslink/infras/jwt"
	"buslink/infras/otel"
	"buslink/infras/postgres"
	"buslink/infras/redis"
	authService "buslink/internal/domains/auth/service"
	bookingRepository "buslink/internal/domains/booking/repository"
	bookingService "buslink/internal/domains/booking/service"
	cartRepository "buslink/internal/domains/cart/repository"
	cartService "buslink/internal/domains/cart/service"
	checkoutService "buslink/internal/domains/checkout/service"
	routeRepository "buslink/internal/domains/route/repository"
	routeService "buslink/internal/domains/route/service"
	userRepository "buslink/internal/domains/user/repository"
	authHandler "buslink/internal/handlers/auth"
	bookingHandler "buslink/internal/handlers/booking"
	cartHandler "buslink/internal/handlers/cart"
	checkoutHandler "buslink/internal/handlers/checkout"
	routeHandler "buslink/internal/handlers/route"
	"buslink/shared/cache"
	transportHTTP "buslink/transport/http"
	"buslink/transport/http/middleware"
	"buslink/transport/http/router"

	"github.com/google/wire"
)

var infrastructure = wire.NewSet(
	config.Get,
	postgres.New,
	redis.New,
	otel.New,
	jwt.New,
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	routeRepository.New,
	cartRepository.New,
	bookingRepository.New,
)

var services = wire.NewSet(
	authService.New,
	routeService.New,
	cartService.New,
	bookingService.New,
	checkoutService.New,
)

var handlers = wire.NewSet(
	authHandler.ProvideAuthHandler,
	routeHandler.ProvideRouteHandler,
	cartHandler.ProvideCartHandler,
	checkoutHandler.ProvideCheckoutHandler,
	bookingHandler.ProvideBookingHandler,
	wire.Struct(new(router.DomainHandlers), "*"),
)

var transport = wire.NewSet(
	middleware.NewAuthRole,
	middleware.NewRateLimiter,
	router.ProvideRouter,
	transportHTTP.ProvideHTTP,
)

func InitializeApp() *App {
	wire.Build(
		infrastructure,
		repositories,
		services,
		handlers,
		transport,
		helper.ProvideSeeder,
		ProvideApp,
	)

	return nil
}
