package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Saad200724/ZnPOS/internal/config"
	"github.com/Saad200724/ZnPOS/internal/infra"
	"github.com/Saad200724/ZnPOS/internal/repository"
	"github.com/Saad200724/ZnPOS/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := infra.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}

	seq := repository.NewSequencer(db)
	transactions := repository.NewTransactionRepository(db, seq)

	worker.StartReconciler(ctx, worker.ReconcilerConfig{
		Transactions: transactions,
		Interval:     time.Duration(cfg.ReconcileIntervalSeconds) * time.Second,
		PendingTTL:   time.Duration(cfg.PendingTTLMinutes) * time.Minute,
	})

	// Graceful shutdown on SIGINT / SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down reconciler…")
	cancel()
	log.Info().Msg("reconciler exited")
}
