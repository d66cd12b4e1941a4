package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airportadm/config"
	"github.com/Domenick1991/airportadm/internal/audit"
	"github.com/Domenick1991/airportadm/internal/kafka"
	"github.com/Domenick1991/airportadm/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ChangesTopic)
	defer consumer.Close()

	recorder := audit.NewRecorder(repository.NewAuditRepository(pool))

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, event kafka.ChangeEvent) error {
			if err := recorder.Record(ctx, event); err != nil {
				logger.Error().Err(err).Str("entity", event.Entity).Msg("record audit entry")
			}
			return nil
		})
		if err != nil {
			logger.Info().Err(err).Msg("consumer stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")
}
