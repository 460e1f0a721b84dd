// Command migrate applies the embedded schema migrations with goose.
//
//	migrate [up|down|status|version|redo|reset] [args...]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"fulfilment/cmd"
	"fulfilment/migrations"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	flag.Parse()

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Errorf("goose: failed to close DB: %v", closeErr)
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err = goose.RunContext(context.Background(), command, db, ".", args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
