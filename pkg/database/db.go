// Package database opens the GORM connection the storefront runs on.
// The handle is returned, not stored in a package global, so services and
// repositories receive it by injection and tests can swap in an in-memory
// SQLite database.
package database

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/maison/config"
	"github.com/shashiranjanraj/maison/pkg/metrics"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database configured by DB_DRIVER / DB_DSN and
// configures the connection pool.
func Connect() (*gorm.DB, error) {
	return Open(config.DatabaseDriver(), config.DatabaseDSN())
}

// Open opens a database with an explicit driver and DSN.
func Open(driver, dsn string) (*gorm.DB, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: build dialector: %w", err)
	}

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // use pkg/logger, not GORM's own
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	// Configure connection pool for production.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	// Verify connection is live.
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	if err := instrument(db); err != nil {
		return nil, fmt.Errorf("database: instrument: %w", err)
	}

	return db, nil
}

const startTimeKey = "maison:query_start"

// instrument hooks Prometheus query timers into GORM's callback chain so
// every query feeds the per-operation duration histogram.
func instrument(db *gorm.DB) error {
	startTimer := func(tx *gorm.DB) {
		tx.InstanceSet(startTimeKey, time.Now())
	}
	observe := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			if start, ok := tx.InstanceGet(startTimeKey); ok {
				metrics.ObserveDBQuery(operation, start.(time.Time))
			}
		}
	}

	if err := db.Callback().Query().Before("gorm:query").Register("metrics:before_select", startTimer); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:after_select", observe("select")); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:before_insert", startTimer); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("metrics:after_insert", observe("insert")); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("metrics:before_update", startTimer); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("metrics:after_update", observe("update")); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", startTimer); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", observe("delete")); err != nil {
		return err
	}

	return nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}
