package router

import (
	"github.com/go-chi/chi/v5"

	"reserva/internal/handlers/health"
	"reserva/internal/handlers/reservation"
	"reserva/transport/ws"
)

type DomainHandlers struct {
	Health      health.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Hub            *ws.Hub
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Reservation.Router(router)

	router.Get("/ws", r.Hub.Subscribe)
}

func New(domainHandlers DomainHandlers, hub *ws.Hub) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Hub:            hub,
	}
}
