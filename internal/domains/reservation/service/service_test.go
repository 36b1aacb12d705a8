package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reserva/config"
	otelMocks "reserva/infras/otel/mocks"
	"reserva/internal/domains/reservation/mocks"
	"reserva/internal/domains/reservation/model"
	"reserva/internal/domains/reservation/model/dto"
	"reserva/internal/domains/reservation/service"
	eventMocks "reserva/internal/events/mocks"
	cacheMocks "reserva/shared/cache/mocks"
	"reserva/shared/failure"
)

type fixture struct {
	repo      *mocks.MockReservation
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	svc       service.Reservation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockReservation(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return &fixture{
		repo:      repo,
		cache:     redisCache,
		publisher: publisher,
		svc:       service.New(repo, cfg, redisCache, publisher, otelMocks.NewOtel()),
	}
}

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		Fullname: "Jane Doe",
		Date:     "2099-10-31",
		Time:     "10",
		Service:  "Haircut",
		Mobile:   "0601020304",
	}
}

func TestCreate_Success(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetByDate(gomock.Any(), gomock.Any()).
		Return([]model.Reservation{}, nil)
	f.repo.EXPECT().
		CountByDateHour(gomock.Any(), gomock.Any(), 10).
		Return(0, nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	f.publisher.EXPECT().
		ReservationCreated(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, res dto.ReservationResponse) {
			assert.Equal(t, "Jane Doe", res.Fullname)
			assert.Equal(t, "10", res.Time)
		})

	// Cache invalidation is the last step of the announce goroutine, so
	// waiting on it keeps the mocks quiet until the goroutine is done.
	announced := make(chan struct{})
	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) error {
			close(announced)

			return nil
		})

	res, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "2099-10-31", res.Date)
	assert.Equal(t, "10", res.Time)
	assert.Equal(t, "Haircut", res.Service)

	select {
	case <-announced:
	case <-time.After(time.Second):
		t.Fatal("expected reservation created event to be published")
	}
}

func TestCreate_NormalizesClockTime(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().CountByDateHour(gomock.Any(), gomock.Any(), 9).Return(0, nil)

	var inserted model.Reservation
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, m model.Reservation) {
			inserted = m
		}).
		Return(nil)

	f.publisher.EXPECT().ReservationCreated(gomock.Any(), gomock.Any())

	announced := make(chan struct{})
	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) error {
			close(announced)

			return nil
		})

	req := validRequest()
	req.Time = "09:00"

	res, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "9", res.Time)
	assert.Equal(t, 9, inserted.Hour)

	select {
	case <-announced:
	case <-time.After(time.Second):
		t.Fatal("expected reservation created event to be published")
	}
}

func TestCreate_MalformedDate(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = "not-a-date"

	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestCreate_PastSlot(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().CountByDateHour(gomock.Any(), gomock.Any(), 10).Return(0, nil)

	req := validRequest()
	req.Date = "2020-01-01"

	_, err := f.svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "past")
}

func TestCreate_OverlapRejection(t *testing.T) {
	f := newFixture(t)

	existing := []model.Reservation{{
		ID:      "other",
		Date:    time.Date(2099, 10, 31, 0, 0, 0, 0, time.UTC),
		Hour:    9,
		Service: "Protein treatment + haircut",
	}}

	f.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(existing, nil)
	f.repo.EXPECT().CountByDateHour(gomock.Any(), gomock.Any(), 10).Return(0, nil)

	_, err := f.svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "9:00")
}

func TestCreate_FullSlot(t *testing.T) {
	f := newFixture(t)

	existing := []model.Reservation{
		{ID: "a", Date: time.Date(2099, 10, 31, 0, 0, 0, 0, time.UTC), Hour: 10, Service: "Haircut"},
		{ID: "b", Date: time.Date(2099, 10, 31, 0, 0, 0, 0, time.UTC), Hour: 10, Service: "Coloring"},
	}

	f.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(existing, nil)
	f.repo.EXPECT().CountByDateHour(gomock.Any(), gomock.Any(), 10).Return(2, nil)

	_, err := f.svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "2/2")
}

func TestCreate_StorageFailureIsOpaque(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().CountByDateHour(gomock.Any(), gomock.Any(), 10).Return(0, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("pq: connection refused"))

	_, err := f.svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.NotContains(t, err.Error(), "pq:")
}

func TestCreate_ReadFailureIsOpaque(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: timeout"))

	_, err := f.svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.NotContains(t, err.Error(), "pq:")
}

func TestGetAll_CacheMiss(t *testing.T) {
	f := newFixture(t)

	models := []model.Reservation{
		{ID: "newest", Hour: 10, Service: "Haircut", CreatedAt: time.Now()},
		{ID: "oldest", Hour: 14, Service: "Coloring", CreatedAt: time.Now().Add(-time.Hour)},
	}

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any()).Return(models, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(nil)

	res, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Reservations, 2)
	assert.Equal(t, "newest", res.Reservations[0].ID)
}

func TestGetAll_CacheHit(t *testing.T) {
	f := newFixture(t)

	cached := dto.GetReservationsResponse{
		Reservations: []dto.ReservationResponse{{ID: "cached"}},
		Total:        1,
	}

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			ptr, ok := value.(*dto.GetReservationsResponse)
			require.True(t, ok)
			*ptr = cached

			return nil
		})

	res, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Reservations, 1)
	assert.Equal(t, "cached", res.Reservations[0].ID)
}

func TestGetByDate(t *testing.T) {
	f := newFixture(t)

	models := []model.Reservation{
		{ID: "early", Hour: 9, Service: "Haircut"},
		{ID: "late", Hour: 15, Service: "Coloring"},
	}

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetByDateSorted(gomock.Any(), gomock.Any()).
		Return(models, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(nil)

	res, err := f.svc.GetByDate(context.Background(), "2099-10-31")
	require.NoError(t, err)
	require.Len(t, res.Reservations, 2)
	assert.Equal(t, "early", res.Reservations[0].ID)
}

func TestGetByDate_MalformedDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByDate(context.Background(), "31-10-2099")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestToday(t *testing.T) {
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, service.Today())
}
