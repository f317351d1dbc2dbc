package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Belphemur/ReaderSettings/internal/config"
	"github.com/Belphemur/ReaderSettings/internal/metrics"
	"github.com/Belphemur/ReaderSettings/internal/settings"
	"github.com/Belphemur/ReaderSettings/internal/storage"
)

var (
	errEphemeralProvider = errors.New("the memory provider does not outlive the process; use sqlite or redis to change options")
	errMetricsDisabled   = errors.New("metrics are disabled; set metrics.enabled to true")
)

// app carries the per-invocation state built in PersistentPreRunE.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger

	provider string
	path     string

	store    storage.Store
	settings *settings.Settings
}

func newRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:           "readerprefs",
		Short:         "Inspect and change reader preferences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.provider, "provider", cfg.Storage.Provider, "storage provider ("+strings.Join(storage.RegisteredProviders(), ", ")+")")
	root.PersistentFlags().StringVar(&a.path, "path", cfg.Storage.Path, "SQLite database file")

	root.AddCommand(
		a.listCmd(),
		a.getCmd(),
		a.setCmd(),
		a.serveMetricsCmd(),
	)
	return root
}

func (a *app) open() error {
	store, err := storage.New(a.provider, storage.ProviderConfig{
		Logger:        storage.NewZerologLogger(a.logger),
		Path:          a.path,
		RedisAddress:  a.cfg.Storage.Redis.Address,
		RedisPassword: a.cfg.Storage.Redis.Password,
		RedisDB:       a.cfg.Storage.Redis.DB,
		Group:         a.provider,
	})
	if err != nil {
		return fmt.Errorf("open %s store: %w", a.provider, err)
	}
	a.store = store

	d := a.cfg.Settings.Defaults
	a.settings = settings.New(store, settings.Defaults{
		UILanguage:         d.UILanguage,
		DownloadMedia:      d.DownloadMedia,
		LockTimeout:        d.LockTimeout,
		FontSizeAdjustment: d.FontSizeAdjustment,
	}, a.logger)
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every option and its value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range settings.Options() {
				val, err := a.settings.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, val)
			}
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <option>",
		Short: "Print the value of one option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, err := a.settings.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <option> <value>",
		Short: "Change the value of one option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.provider == "memory" {
				return errEphemeralProvider
			}
			if err := a.settings.Set(args[0], args[1]); err != nil {
				return err
			}
			a.logger.Info().Str("option", args[0]).Str("value", args[1]).Msg("Option updated")
			return nil
		},
	}
}

func (a *app) serveMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-metrics",
		Short: "Expose Prometheus metrics until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Metrics.Enabled {
				return errMetricsDisabled
			}
			srv := metrics.NewHTTPServer(a.cfg.Metrics.Address, a.cfg.Metrics.Port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				a.logger.Info().Msg("Shutting down metrics server")
				if err := srv.Shutdown(context.Background()); err != nil {
					a.logger.Error().Err(err).Msg("Failed to shutdown metrics server")
				}
			}()

			a.logger.Info().Str("address", srv.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
