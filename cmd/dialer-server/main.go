package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"clipbook-dialer/internal/common/config"
	"clipbook-dialer/internal/common/hubspot"
	"clipbook-dialer/internal/common/logger"
	"clipbook-dialer/internal/dialer/callbody"
	"clipbook-dialer/internal/dialer/calls"
	"clipbook-dialer/internal/dialer/contact"
	"clipbook-dialer/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("Starting Clipbook Dialer shim", map[string]interface{}{
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	})

	if !cfg.HubSpot.Configured() {
		// Startup proceeds so the server can come up locally, but every
		// HubSpot call will fail until the token is set.
		log.Warn("HUBSPOT_ACCESS_TOKEN is not set; HubSpot requests will be rejected", map[string]interface{}{
			"baseUrl": cfg.HubSpot.BaseURL,
		})
	}

	hs := hubspot.NewClient(
		cfg.HubSpot.AccessToken,
		cfg.HubSpot.BaseURL,
		config.GetDuration(cfg.HubSpot.Timeout),
	)

	resolver := contact.NewResolver(hs, log)
	service := calls.NewService(hs, resolver, callbody.NewV1(), log)
	srv := server.New(cfg, service, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("Server exited with error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	log.Info("Server stopped", nil)
}
