package router

import (
	authHandler "buslink/internal/handlers/auth"
	bookingHandler "buslink/internal/handlers/booking"
	cartHandler "buslink/internal/handlers/cart"
	checkoutHandler "buslink/internal/handlers/checkout"
	routeHandler "buslink/internal/handlers/route"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     authHandler.AuthHandler
	Route    routeHandler.RouteHandler
	Cart     cartHandler.CartHandler
	Checkout checkoutHandler.CheckoutHandler
	Booking  bookingHandler.BookingHandler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func ProvideRouter(domainHandlers DomainHandlers) Router {
	return Router{DomainHandlers: domainHandlers}
}

// SetupRoutes mounts every domain router under the versioned prefix.
func (r *Router) SetupRoutes(mux chi.Router) {
	mux.Route("/v1", func(rc chi.Router) {
		r.DomainHandlers.Auth.Router(rc)
		r.DomainHandlers.Route.Router(rc)
		r.DomainHandlers.Cart.Router(rc)
		r.DomainHandlers.Checkout.Router(rc)
		r.DomainHandlers.Booking.Router(rc)
	})
}
