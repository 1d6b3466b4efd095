// Package database handles database connections for the reconciliation store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// configure MySQL connections based on the application's configuration, plus
// an in-memory SQLite mode used by the test suites.
//
// # Connect
//
// The Connect function establishes a connection to the database. It is
// agnostic to the schema; migrations are driven by the feature models
// (sessions and transactions) at startup.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
