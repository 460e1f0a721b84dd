// Package pgtest starts a throwaway PostgreSQL container with the fulfilment schema applied.
// It is imported by integration tests only.
package pgtest

import (
	"context"
	"time"

	"fulfilment/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container and a GORM connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects with TranslateError enabled and applies the
// migrations, seed rows included.
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
		return nil, err
	}

	database := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	database.DB = db

	sqlDB, err := db.DB()
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	if err = migrations.Up(ctx, sqlDB); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

var resetStatements = []string{
	"TRUNCATE TABLE fulfillments, warehouses",
	"DELETE FROM products WHERE id > 3",
	"DELETE FROM stores WHERE id > 3",
	`INSERT INTO products (id, name, description, stock) VALUES
		(1, 'TONSTAD', '', 10), (2, 'KALLAX', '', 5), (3, 'BESTÅ', '', 3)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, stock = EXCLUDED.stock`,
	`INSERT INTO stores (id, name, quantity_products_in_stock) VALUES
		(1, 'TONSTAD', 10), (2, 'KALLAX', 5), (3, 'BESTÅ', 3)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, quantity_products_in_stock = EXCLUDED.quantity_products_in_stock`,
}

// Reset empties the warehouse and fulfillment tables and puts the product and store
// catalogs back to their seed rows.
func (d *Database) Reset() error {
	for _, statement := range resetStatements {
		if err := d.DB.Exec(statement).Error; err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
