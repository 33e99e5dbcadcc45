package handler

import (
	"net/http"
	"sync"

	"intake/config"
	"intake/di"
	"intake/shared/logger"
	transportHTTP "intake/transport/http"
)

var (
	server *transportHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
