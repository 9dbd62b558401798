package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hmpaquetes/cmd"
	"hmpaquetes/internal/adapters/out/postgres/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "app",
		Short:         "HM Paquetes shipment tracking service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadDotEnv(".env")
		},
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			if migrate {
				if err = runMigrations(configs); err != nil {
					return err
				}
			}
			return serve(c.Context(), configs)
		},
	}
	c.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before starting")
	return c
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(*cobra.Command, []string) error {
			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			return runMigrations(configs)
		},
	}
}

// loadDotEnv reads an optional .env file; a missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func runMigrations(configs cmd.Config) error {
	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err = migrations.Up(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func serve(ctx context.Context, configs cmd.Config) error {
	logger := cmd.NewLogger(configs, os.Stdout)
	slog.SetDefault(logger)

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		return err
	}

	publisher, closePublisher, err := cmd.NewEventPublisher(configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closePublisher(); closeErr != nil {
			logger.Error("close event publisher", "error", closeErr)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := app.CreateRouter()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
