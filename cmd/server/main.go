package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/report_admin/configs"
	"github.com/report_admin/internal/metrics"
	"github.com/report_admin/internal/routes"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/pkg/db"
	"github.com/report_admin/pkg/email"
)

// @title Report Admin API
// @version 1.0
// @description Administrative API for citizen-submitted reports, their status workflow and user accounts.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configs.LoadConfig()
	cfg := configs.AppConfig

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if level != log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := db.OpenStore(ctx, cfg.Store)
	if err != nil {
		log.WithError(err).Fatal("failed to open store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		backend.Close(closeCtx)
	}()

	var notifier services.Notifier
	if smtpCfg, err := email.LoadSMTPConfigFromEnv(); err == nil {
		notifier = email.NewNotifier(smtpCfg)
		log.WithField("host", smtpCfg.Host).Info("resolution emails enabled")
	} else {
		log.Info("SMTP not configured, resolution emails disabled")
	}

	handlers := routes.NewHandlers(backend.Store, cfg, notifier)
	router := routes.NewRouter(cfg, handlers, backend.Ping)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s...", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to run server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
