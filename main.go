package main

import (
	"log"

	"booking-server/confs"
	"booking-server/kvstore"
	"booking-server/repositories"
	"booking-server/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// open record store (SQLite local file or hosted Postgres)
	db, err := kvstore.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	store, err := kvstore.NewGormStore(db)
	if err != nil {
		log.Fatalf("Failed to prepare record store: %v", err)
	}

	// install demo accounts and default catalogs on first use
	if err := repositories.Seed(
		repositories.NewUserKvRepository(store),
		repositories.NewBookingKvRepository(store),
		repositories.NewCatalogKvRepository(store),
	); err != nil {
		log.Fatalf("Failed to seed record store: %v", err)
	}

	// run server
	srv := server.NewServer(cfg, store)
	srv.Start()
}
