package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/VladPetriv/money/config"
	"github.com/VladPetriv/money/internal/api/currencybeacon"
	"github.com/VladPetriv/money/internal/api/rest"
	"github.com/VladPetriv/money/internal/migrations"
	"github.com/VladPetriv/money/internal/service"
	"github.com/VladPetriv/money/internal/store"
	"github.com/VladPetriv/money/pkg/currency"
	"github.com/VladPetriv/money/pkg/database"
	"github.com/VladPetriv/money/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Run is used to start the application.
func Run(cfg *config.Config, logger *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("run application")
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	table, err := loadTable(cfg.Currency)
	if err != nil {
		return fmt.Errorf("load currency table: %w", err)
	}
	restore := currency.Use(table)
	defer restore()
	logger.Info().Int("currencies", table.Len()).Msg("currency definitions loaded")

	var (
		stores service.Stores
		apis   service.APIs
		db     database.Database
	)

	if cfg.PostgreSQL.Host != "" {
		postgres, err := database.NewPostgreSQL(database.PostgreSQLOptions{
			User:     cfg.PostgreSQL.User,
			Password: cfg.PostgreSQL.Password,
			Database: cfg.PostgreSQL.Database,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			SSLMode:  cfg.PostgreSQL.SSLMode,
		})
		if err != nil {
			return fmt.Errorf("create postgresql connection: %w", err)
		}
		defer postgres.Close()

		err = migrations.MigrateDB(logger, postgres.DB, cfg.PostgreSQL.Database, migrations.Migrations)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		db = postgres
		stores.Currency = store.NewCurrency(postgres)
	}

	if cfg.CurrencyBeacon.APIKey != "" {
		currencyBeacon := currencybeacon.New(cfg.CurrencyBeacon.APIURL, cfg.CurrencyBeacon.APIKey)
		defer currencyBeacon.Close()

		apis.CurrencyExchanger = currencyBeacon
	}

	currencyService := service.NewCurrency(service.CurrencyOptions{
		Logger:   logger,
		Table:    table,
		Storages: stores,
		APIs:     apis,
	})

	if stores.Currency != nil {
		_, err := currencyService.SyncDefinitions(ctx)
		if err != nil {
			return fmt.Errorf("sync currency definitions: %w", err)
		}
	}

	if apis.CurrencyExchanger != nil {
		// Provider outage must not prevent serving local definitions.
		_, err := currencyService.Reconcile(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("reconcile currencies with provider")
		}
	}

	srv := rest.New(rest.Options{
		Logger:        logger,
		Services:      service.Services{Currency: currencyService},
		Database:      db,
		ServerAddress: cfg.HTTP.ServerAddress,
	})

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown rest server: %w", err)
	}

	return nil
}

func loadTable(cfg config.Currency) (*currency.Table, error) {
	if cfg.DefinitionsFile == "" {
		return currency.DefaultTable(), nil
	}

	return currency.LoadTable(cfg.DefinitionsFile)
}
