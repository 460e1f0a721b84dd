// Package migrations embeds the SQL schema of the fulfilment service and applies it with goose.
// The last migration seeds a small catalog of products, stores and warehouses.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up applies every pending migration to db.
func Up(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return err
	}

	_, err = provider.Up(ctx)
	return err
}
