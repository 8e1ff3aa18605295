package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"multivendor-shop/internal/config"
	"multivendor-shop/internal/db"
	"multivendor-shop/internal/logger"
)

var openDBFunc = db.NewDatabase

func main() {
	mode := flag.String("mode", db.ModeUp, "migration mode: up or down")
	flag.Parse()

	if err := run(*mode); err != nil {
		log.Fatal(err)
	}
}

func run(mode string) error {
	if mode != db.ModeUp && mode != db.ModeDown {
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	if err := logger.Init("development", os.Getenv("LOG_LEVEL")); err != nil {
		return err
	}
	defer logger.Sync()

	database, err := openDBFunc(*cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return migrate(database, mode)
}

func migrate(database *sql.DB, mode string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return db.Migrate(ctx, database, mode)
}
