// Package events carries "reservation created" notifications from the
// booking service to whoever listens: websocket subscribers, and a Kafka
// topic when one is configured. Publishing is best-effort and must never
// fail or delay the booking that triggered it.
package events

import (
	"context"

	"github.com/rs/zerolog/log"

	"reserva/infras/kafka"
	"reserva/internal/domains/reservation/model/dto"
	"reserva/shared/constant"

	"reserva/config"
	"reserva/infras/otel"
)

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

// EventReservationCreated is the event name on the wire, shared by the
// websocket frames and the Kafka message keys.
const EventReservationCreated = "newReservation"

// Publisher is the injected capability the booking service uses to announce
// a created reservation.
type Publisher interface {
	ReservationCreated(ctx context.Context, reservation dto.ReservationResponse)
}

// Noop discards every event. Used in tests and when no sink is configured.
type Noop struct{}

func (Noop) ReservationCreated(_ context.Context, _ dto.ReservationResponse) {}

// Fanout publishes to every configured sink in order.
type Fanout struct {
	sinks []Publisher
}

func NewFanout(sinks ...Publisher) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) ReservationCreated(ctx context.Context, reservation dto.ReservationResponse) {
	for _, sink := range f.sinks {
		sink.ReservationCreated(ctx, reservation)
	}
}

// KafkaPublisher mirrors creation events onto a Kafka topic for any
// downstream consumer (e.g. a notification worker).
type KafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewKafkaPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) *KafkaPublisher {
	return &KafkaPublisher{
		client: client,
		topic:  cfg.Events.Kafka.Topic,
		otel:   otel,
	}
}

func (p *KafkaPublisher) ReservationCreated(ctx context.Context, reservation dto.ReservationResponse) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".KafkaPublisher.ReservationCreated")
	defer scope.End()

	err := p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:   EventReservationCreated,
		Value: reservation,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", p.topic).Msg("failed to publish reservation created event to kafka")
	}
}
