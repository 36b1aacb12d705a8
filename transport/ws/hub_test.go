package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reserva/internal/domains/reservation/model/dto"
	"reserva/internal/events"
	"reserva/transport/ws"
)

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	if resp != nil {
		resp.Body.Close()
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := ws.NewHub()

	server := httptest.NewServer(http.HandlerFunc(hub.Subscribe))
	defer server.Close()

	conn := dial(t, server)

	reservation := dto.ReservationResponse{
		ID:       "res-1",
		Fullname: "Jane Doe",
		Date:     "2026-10-31",
		Time:     "10",
		Service:  "Haircut",
	}

	// Registration races the dial, so keep publishing until the frame
	// arrives.
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				hub.ReservationCreated(context.Background(), reservation)
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var received struct {
		Event string                  `json:"event"`
		Data  dto.ReservationResponse `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&received))

	assert.Equal(t, events.EventReservationCreated, received.Event)
	assert.Equal(t, "res-1", received.Data.ID)
	assert.Equal(t, "Jane Doe", received.Data.Fullname)
	assert.Equal(t, "10", received.Data.Time)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := ws.NewHub()

	done := make(chan struct{})

	go func() {
		hub.ReservationCreated(context.Background(), dto.ReservationResponse{ID: "res-1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish with no subscribers should not block")
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := ws.NewHub()

	server := httptest.NewServer(http.HandlerFunc(hub.Subscribe))
	defer server.Close()

	first := dial(t, server)
	second := dial(t, server)

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				hub.ReservationCreated(context.Background(), dto.ReservationResponse{ID: "res-2"})
			}
		}
	}()

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

		var received struct {
			Event string                  `json:"event"`
			Data  dto.ReservationResponse `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&received))
		assert.Equal(t, "res-2", received.Data.ID)
	}
}
