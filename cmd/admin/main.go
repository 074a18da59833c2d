package main

import (
	"context"
	"errors"
	"os"
	"proccms/config"
	"proccms/di"
	"proccms/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	cli := newCommandLine(di.InitializeAdmin(), os.Stdout)

	if err := cli.run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			log.Error().Err(err).Msg("admin command failed")
		}

		os.Exit(1)
	}
}
