// Package db opens the application's gorm connection.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database and returns the handle.
//
// By default this is a SQLite file (SQLITE_PATH, falling back to
// ./database.db). Setting DB_DRIVER=postgres switches to Postgres with
// the DSN taken from DATABASE_DSN. The connection is retried for up to
// 60 seconds, which covers Postgres containers that are still starting.
//
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Open() *gorm.DB {
	dial := dialector()

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// SQLite pooling mirrors the checked-in defaults the app always ran
	// with: connections may be shared across request goroutines and are
	// recycled before they go stale.
	if sqlDB, err := conn.DB(); err == nil {
		sqlDB.SetConnMaxLifetime(299 * time.Second)
	}

	return conn
}

// dialector picks the gorm driver from the environment.
func dialector() gorm.Dialector {
	if os.Getenv("DB_DRIVER") == "postgres" {
		dsn := os.Getenv("DATABASE_DSN")
		if dsn == "" {
			log.Fatal("DB_DRIVER=postgres requires DATABASE_DSN")
		}
		return postgres.Open(dsn)
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./database.db"
	}
	return sqlite.Open(path)
}
