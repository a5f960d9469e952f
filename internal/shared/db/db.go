package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"circle-service/configs"
)

type Store struct{ DB *gorm.DB }

// Open connects to Postgres with exponential backoff; the database may
// come up after the service in a compose environment.
func Open(cfg *configs.Config) *Store {
	var base *gorm.DB
	var err error
	sleep := time.Second
	for i := 0; i < 8; i++ {
		base, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, _ := base.DB()
			// A failed ping keeps err non-nil so exhausting every
			// attempt is fatal instead of handing out a dead pool.
			if err = pingWithTimeout(sqlDB, 2*time.Second); err == nil {
				break
			}
		}
		time.Sleep(sleep)
		if sleep < 8*time.Second {
			sleep *= 2
		}
	}
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := base.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		log.Printf("db tracing plugin: %v", err)
	}

	sqlDB, _ := base.DB()
	sqlDB.SetMaxOpenConns(40)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return &Store{DB: base}
}

func pingWithTimeout(sqlDB *sql.DB, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- sqlDB.Ping() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("db ping timeout after %s", timeout)
	}
}
