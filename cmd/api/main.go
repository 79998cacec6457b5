package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/qfnexora/finance-api/internal/api"
	"github.com/qfnexora/finance-api/internal/core/ports"
	"github.com/qfnexora/finance-api/internal/infrastructure/config"
	"github.com/qfnexora/finance-api/internal/infrastructure/crypto"
	financemongo "github.com/qfnexora/finance-api/internal/infrastructure/db/mongo"
	financeredis "github.com/qfnexora/finance-api/internal/infrastructure/db/redis"
	"github.com/qfnexora/finance-api/internal/infrastructure/mail"
	"github.com/qfnexora/finance-api/internal/infrastructure/queue"
	"github.com/qfnexora/finance-api/internal/infrastructure/token"
	"github.com/qfnexora/finance-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title QFNexora Finance API
// @version 1.0
// @description Personal and business finance tracking backend.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := financemongo.Connect(ctx, financemongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnecting mongodb")
		}
	}()

	if err := financemongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensuring user indexes")
	}
	if err := financemongo.NewTransactionRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensuring transaction indexes")
	}

	// --- Redis (optional: only OTP cooldowns depend on it) ---
	var cooldown ports.Cooldown
	rdb, err := financeredis.Connect(ctx, financeredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, OTP cooldowns disabled")
		rdb = nil
	} else {
		cooldown = financeredis.NewOTPCooldown(rdb)
		defer rdb.Close()
	}

	// --- Mail delivery ---
	mailer := mail.NewMailgunMailer(mail.Config{
		APIKey: cfg.Mailgun.APIKey,
		Domain: cfg.Mailgun.Domain,
		Sender: cfg.Mailgun.Sender,
	})
	dispatcher := queue.NewDispatcher(0, mailer, log)
	dispatcher.Start(ctx)
	notifier := mail.NewNotifier(mailer, dispatcher, log)

	e := api.NewRouter(api.Deps{
		DB:       db,
		Redis:    rdb,
		Hasher:   crypto.NewBcryptHasher(),
		Tokens:   token.NewJWTIssuer(cfg.JWTSecret, 0),
		Notifier: notifier,
		Cooldown: cooldown,
		AdminKey: cfg.AdminAPIKey,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutting down http server")
	}
}
