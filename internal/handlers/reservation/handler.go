package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reserva/infras/otel"
	"reserva/internal/domains/reservation/model/dto"
	"reserva/internal/domains/reservation/service"
	"reserva/shared/constant"
	"reserva/shared/validator"
	"reserva/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
	})
}

// CreateReservation books a slot from the request payload and returns the
// stored reservation.
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// GetReservations lists reservations. Without a date parameter it returns
// every reservation, newest first. With one it returns that day's
// reservations in hour order; the literal "today" resolves to the current
// date in the application timezone.
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)

	var (
		reservations dto.GetReservationsResponse
		err          error
	)

	switch date {
	case "":
		reservations, err = handler.service.GetAll(ctx)
	case constant.DateParamToday:
		reservations, err = handler.service.GetByDate(ctx, service.Today())
	default:
		reservations, err = handler.service.GetByDate(ctx, date)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(writer, http.StatusOK, reservations)
}
