package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"reserva/infras/otel"
	"reserva/infras/postgres"
	"reserva/internal/domains/reservation/model"
	"reserva/shared/constant"
	"reserva/shared/logger"
)

type Reservation interface {
	Insert(ctx context.Context, reservation model.Reservation) error
	CountByDateHour(ctx context.Context, date time.Time, hour int) (int, error)
	GetByDate(ctx context.Context, date time.Time) ([]model.Reservation, error)
	GetByDateSorted(ctx context.Context, date time.Time) ([]model.Reservation, error)
	GetAll(ctx context.Context) ([]model.Reservation, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const insertQuery = `INSERT INTO reservations (id, fullname, date, hour, service, message, mobile, created_at)
VALUES (:id, :fullname, :date, :hour, :service, :message, :mobile, :created_at)`

func (repo *repositoryImpl) Insert(ctx context.Context, reservation model.Reservation) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	_, err := repo.db.Write.NamedExecContext(ctx, insertQuery, reservation)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) CountByDateHour(ctx context.Context, date time.Time, hour int) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CountByDateHour")
	defer scope.End()

	query := `SELECT COUNT(*) FROM reservations WHERE date = $1 AND hour = $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count := 0

	err := repo.db.Read.GetContext(ctx, &count, query, date, hour)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %s by date and hour: %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByDate")
	defer scope.End()

	query := `SELECT id, fullname, date, hour, service, message, mobile, created_at FROM reservations WHERE date = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservations := []model.Reservation{}

	err := repo.db.Read.SelectContext(ctx, &reservations, query, date)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get %s by date: %w", model.EntityName, err)
	}

	return reservations, nil
}

func (repo *repositoryImpl) GetByDateSorted(ctx context.Context, date time.Time) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByDateSorted")
	defer scope.End()

	query := `SELECT id, fullname, date, hour, service, message, mobile, created_at FROM reservations WHERE date = $1 ORDER BY hour ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservations := []model.Reservation{}

	err := repo.db.Read.SelectContext(ctx, &reservations, query, date)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get sorted %s by date: %w", model.EntityName, err)
	}

	return reservations, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAll")
	defer scope.End()

	query := `SELECT id, fullname, date, hour, service, message, mobile, created_at FROM reservations ORDER BY created_at DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reservations := []model.Reservation{}

	err := repo.db.Read.SelectContext(ctx, &reservations, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all %s: %w", model.EntityName, err)
	}

	return reservations, nil
}
