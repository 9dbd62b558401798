// Package pgtest starts a disposable PostgreSQL container with the schema
// migrated, for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"hmpaquetes/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every migrated table, children first, for TRUNCATE between tests.
const Tables = "cotizacion_app_cotizacion_servicios, cotizacion_app_cotizacion, cotizacion_app_servicio, " +
	"hmpaquetesapp_tareapendiente, hmpaquetesapp_itemdocumento, hmpaquetesapp_despachomensajero, " +
	"hmpaquetesapp_transferenciaalmacen, hmpaquetesapp_entradarecibida, hmpaquetesapp_envio, " +
	"hmpaquetesapp_domicilio, hmpaquetesapp_locacion, hmpaquetesapp_municipio, hmpaquetesapp_provincia"

// Database is a running container and a gorm connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies the migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	database := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return database, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return database, err
	}
	database.DB = db

	sqlDB, err := db.DB()
	if err != nil {
		return database, err
	}
	if err := migrations.Up(sqlDB); err != nil {
		return database, err
	}

	return database, nil
}

// Truncate empties every table and resets identities.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
