package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"reserva/config"
	"reserva/infras/otel"
	"reserva/internal/domains/reservation/model/dto"
	"reserva/internal/domains/reservation/repository"
	"reserva/internal/domains/reservation/schedule"
	"reserva/internal/events"
	"reserva/shared"
	"reserva/shared/cache"
	"reserva/shared/constant"
	"reserva/shared/failure"
	"reserva/shared/timezone"
)

const (
	cacheGetReservations = "reservation:gets"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
	GetByDate(ctx context.Context, date string) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	cfg       *config.Config
	cache     cache.RedisCache
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, publisher events.Publisher, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

// Create books a slot: normalize the request, check availability against the
// reservations already on that date, persist, then announce. The read and the
// write are not isolated in a transaction; two racing requests can both pass
// validation. Accepted for this deployment size.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	sameDate, err := s.repo.GetByDate(ctx, reservation.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations for availability check")

		return res, failure.ServerError //nolint:wrapcheck
	}

	countAtHour, err := s.repo.CountByDateHour(ctx, reservation.Date, reservation.Hour)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations at slot")

		return res, failure.ServerError //nolint:wrapcheck
	}

	candidate := schedule.Candidate{
		Date:    reservation.Date,
		Hour:    reservation.Hour,
		Service: reservation.Service,
	}

	if rejection := schedule.Check(timezone.Now(), candidate, sameDate, countAtHour); rejection != nil {
		log.Info().
			Str("reason", string(rejection.Reason)).
			Str("date", req.Date).
			Int("hour", reservation.Hour).
			Msg("reservation rejected")

		return res, failure.BadRequestFromString(rejection.Message) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to persist reservation")

		return res, failure.ServerError //nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.ReservationCreated(c, res)
		shared.InvalidateCaches(c, s.cache, cacheGetReservations)
	}()

	log.Info().
		Str("id", reservation.ID).
		Str("fullname", reservation.Fullname).
		Str("date", res.Date).
		Int("hour", reservation.Hour).
		Msg("reservation created")

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservations, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, failure.ServerError //nolint:wrapcheck
	}

	res.FromModels(models)

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache reservations")
	}

	return res, nil
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateFormat, date)
	if err != nil {
		return res, failure.InvalidDateParam //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetReservations, "date", day.Format(constant.DateFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations by date")

		return res, nil
	}

	models, err := s.repo.GetByDateSorted(ctx, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations by date")

		return res, failure.ServerError //nolint:wrapcheck
	}

	res.FromModels(models)

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache reservations by date")
	}

	return res, nil
}

// Today returns the current calendar date in the application timezone,
// formatted the way the API expects date parameters.
func Today() string {
	return timezone.Now().Format(constant.DateFormat)
}
