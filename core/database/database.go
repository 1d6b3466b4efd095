package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the configured database.
// The sqlite driver is mainly used by tests (Name: ":memory:"), while mysql
// is the production driver.
func Connect(cfg Config) (*gorm.DB, error) {
	// Suppress GORM logging; connection issues surface through the main logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if cfg.Driver == "sqlite" {
		db, err := gorm.Open(sqlite.Open(cfg.Name), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil
	}

	// The mysql driver requires special characters in the password to be URL
	// encoded; url.UserPassword handles that.
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Verify connection with the same timeout as the DSN
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
