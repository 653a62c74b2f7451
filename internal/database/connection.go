package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

const maxConnectAttempts = 5

// InitDatabase opens the configured database (postgres or sqlite) and verifies
// it with a ping. Postgres may still be starting when the API comes up, so
// failed attempts are retried with exponential backoff. The returned handle is
// owned by the caller; release it with Close at shutdown.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	var lastErr error
	delay := 1 * time.Second

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err := openDriver(driver, cfg)
		if err == nil {
			err = verifyConnection(db)
			if err == nil {
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		lastErr = err
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxConnectAttempts {
			log.WithField("delay", delay.String()).Info("Retrying database connection")
			time.Sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectAttempts, lastErr)
}

// openDriver dispatches to the gorm driver matching the configured name
func openDriver(driver string, cfg DatabaseConfig) (*gorm.DB, error) {
	switch driver {
	case "postgres", "postgresql":
		log.WithField("db_host", cfg.Host).Debug("Connecting to PostgreSQL")
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	case "sqlite", "":
		log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
		return gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", driver)
	}
}

// verifyConnection pings the database and applies the pool limits
func verifyConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	configureConnectionPool(sqlDB)
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// configureConnectionPool bounds the pool; values follow the usual guidance
// for a small API in front of a single database
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
