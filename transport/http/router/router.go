package router

import (
	"suitespot/internal/handlers/billing"
	"suitespot/internal/handlers/booking"
	"suitespot/internal/handlers/frontdesk"
	"suitespot/internal/handlers/guest"
	"suitespot/internal/handlers/room"
	"suitespot/internal/handlers/settings"
	"suitespot/internal/handlers/taxi"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room      room.Handler
	Guest     guest.Handler
	Booking   booking.Handler
	Billing   billing.Handler
	Settings  settings.Handler
	FrontDesk frontdesk.Handler
	Taxi      taxi.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.FrontDesk.Router(routerGroup)
		r.DomainHandlers.Taxi.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
