package main

import (
	"intake/config"
	"intake/di"
	"intake/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
