package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"proccms/config"
	"proccms/di"
	"proccms/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("KAFKA_BROKERS is required to run the notifier")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := di.InitializeNotifier()

	if err := notifier.Consume(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("notifier stopped")

		return
	}

	log.Info().Msg("notifier shut down")
}
