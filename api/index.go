package handler

import (
	"net/http"
	"sync"

	"reserva/config"
	"reserva/di"
	"reserva/shared/logger"
)

var (
	initOnce sync.Once
	app      http.HandlerFunc
)

// Handler adapts the service for serverless platforms that invoke a bare
// http.HandlerFunc per request. The service graph is built once and reused
// across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService().Adaptor()
	})

	app(w, r)
}
