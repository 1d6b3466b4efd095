// Package config provides configuration management for the reconciliation
// service.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, read-only flag)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket for the report archive
//   - Log: Logging level and format
//   - Audit: Audit trail directory and file name
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
