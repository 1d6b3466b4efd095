package config

import (
	"reflect"
	"strings"

	"recon-service/core/audit"
	"recon-service/core/database"
	"recon-service/core/logger"
	"recon-service/core/server"
	"recon-service/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the report archive (S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Audit holds configuration for the audit log sink.
	Audit audit.Config `mapstructure:"audit"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
