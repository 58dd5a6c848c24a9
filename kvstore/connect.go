package kvstore

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the record store. A non-empty databaseURL selects the
// hosted Postgres backend; otherwise the store is a local SQLite file at
// sqlitePath, durable across restarts on one machine.
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if databaseURL != "" {
		dsn := databaseURL
		// Hosted providers require SSL; add it when the URL doesn't say.
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		log.Println("Connecting to hosted database using DB_URL...")
		dialector = postgres.Open(dsn)
	} else {
		if sqlitePath == "" {
			return nil, fmt.Errorf("missing store configuration: DB_URL or SQLITE_PATH required")
		}
		log.Printf("Opening local store at %s...", sqlitePath)
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	log.Println("Record store connection established")
	return db, nil
}
