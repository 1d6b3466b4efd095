package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// When empty, the API is served without authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadOnly disables all write endpoints (POST/PUT/DELETE) when true.
	ReadOnly bool `mapstructure:"read_only" default:"false"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
