package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reserva/infras/postgres"
	"reserva/transport/http/response"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness. The database ping keeps load balancers from
// routing traffic to an instance that lost its connection.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed to ping database")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
