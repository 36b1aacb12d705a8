// Package ws is the realtime side of the API: clients connect over a
// websocket and receive every newly created reservation as it happens.
// Delivery is fire-and-forget; there are no acknowledgments and no replay.
package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"reserva/internal/domains/reservation/model/dto"
	"reserva/internal/events"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Subscribers join without authentication; origin checks are left to
	// the CORS policy of the surrounding deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub owns the set of connected subscribers. A single goroutine serializes
// joins, leaves and broadcasts, so the client set needs no locking.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

func NewHub() *Hub {
	hub := &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
	}

	go hub.run()

	return hub
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Info().Int("subscribers", len(h.clients)).Msg("websocket subscriber joined")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Info().Int("subscribers", len(h.clients)).Msg("websocket subscriber left")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than stall the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// ReservationCreated implements events.Publisher.
func (h *Hub) ReservationCreated(_ context.Context, reservation dto.ReservationResponse) {
	payload, err := json.Marshal(frame{
		Event: events.EventReservationCreated,
		Data:  reservation,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal reservation broadcast")

		return
	}

	h.broadcast <- payload
}

// Subscribe upgrades the request to a websocket and keeps the connection
// registered until the client goes away.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")

		return
	}

	client := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}
