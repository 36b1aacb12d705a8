package di

import (
	"reserva/config"
	"reserva/infras/kafka"
	"reserva/infras/otel"
	"reserva/internal/events"
	"reserva/transport/ws"
)

// providePublisher assembles the event sinks for created reservations. The
// websocket hub is always on; Kafka joins the fanout only when enabled.
func providePublisher(cfg *config.Config, hub *ws.Hub, client kafka.Client, ot otel.Otel) events.Publisher {
	sinks := []events.Publisher{hub}

	if cfg.Events.Kafka.Enable {
		sinks = append(sinks, events.NewKafkaPublisher(client, cfg, ot))
	}

	return events.NewFanout(sinks...)
}
