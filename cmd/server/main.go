package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"community_portal/internal/config"
	"community_portal/internal/logger"
	"community_portal/internal/routes"
	"community_portal/internal/seed"
	"community_portal/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var (
		cfg    *config.Config
		logOut io.Writer
	)

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Saharanpur community portal server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(v)
			if err != nil {
				return err
			}
			logOut = logger.Setup(cfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg, logOut)
		},
	}

	flags := root.PersistentFlags()
	flags.String("http-addr", "", "listen address (env HTTP_ADDR)")
	flags.String("db-driver", "", "database driver, pgx or pq (env DB_DRIVER)")
	flags.String("log-level", "", "log level (env LOG_LEVEL)")
	flags.Bool("log-stdout", false, "mirror logs to stdout (env LOG_STDOUT)")
	for key, name := range map[string]string{
		"http_addr":  "http-addr",
		"db_driver":  "db-driver",
		"log_level":  "log-level",
		"log_stdout": "log-stdout",
	} {
		// flags only override env when set explicitly
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), cfg, logOut)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cfg, func(db *gorm.DB) error {
					if err := config.Migrate(db); err != nil {
						return err
					}
					logrus.Info("database migrated")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load sample data into an empty database",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cfg, func(db *gorm.DB) error {
					if err := config.Migrate(db); err != nil {
						return err
					}
					err := seed.Run(cmd.Context(), db, time.Now())
					if errors.Is(err, seed.ErrAlreadySeeded) {
						logrus.Warn("sample data already present, nothing to do")
						return nil
					}
					return err
				})
			},
		},
	)
	return root
}

// withDatabase opens the database for the duration of fn.
func withDatabase(cfg *config.Config, fn func(db *gorm.DB) error) error {
	db, err := config.OpenDatabase(cfg.DB, logger.Gorm())
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			logrus.WithError(err).Warn("closing database")
		}
	}()
	return fn(db)
}

func serve(ctx context.Context, cfg *config.Config, logOut io.Writer) error {
	gin.SetMode(cfg.GinMode)

	return withDatabase(cfg, func(db *gorm.DB) error {
		if err := config.Migrate(db); err != nil {
			return err
		}

		r, err := routes.SetupRouter(routes.Options{
			Store:          store.New(db),
			AccessLog:      logOut,
			AllowedOrigins: cfg.AllowedOrigins,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			defer close(errCh)
			logrus.WithField("addr", cfg.HTTPAddr).Info("server running")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logrus.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})
}
