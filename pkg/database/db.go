package database

import (
	"fmt"
	"log"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	mu sync.Mutex
	db *gorm.DB
)

// Connect opens the process-wide database handle using the given DSN. Calling
// it again while connected returns the existing handle; after Disconnect it
// reconnects. An empty DSN falls back to the DB_* environment variables.
func Connect(dsn string) *gorm.DB {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db
	}

	if dsn == "" {
		dsn = dsnFromEnv()
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db = conn
	return db
}

// GetDB returns the current handle, connecting if needed.
func GetDB() *gorm.DB {
	mu.Lock()
	handle := db
	mu.Unlock()

	if handle == nil {
		return Connect("")
	}
	return handle
}

// Disconnect closes the underlying pool and resets the handle so a later
// Connect establishes a fresh connection.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}

	db = nil
	return nil
}

func dsnFromEnv() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		valueOrDefault("DB_HOST", "localhost"),
		valueOrDefault("DB_USER", "postgres"),
		os.Getenv("DB_PASS"),
		valueOrDefault("DB_NAME", "campusfest"),
		valueOrDefault("DB_PORT", "5432"),
	)
}

func valueOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
