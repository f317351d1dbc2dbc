package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ReaderSettings/internal/config"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialise Sentry, continuing without error reporting")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		sentry.CaptureException(err)
		logger.Error().Err(err).Msg("Command failed")
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}
