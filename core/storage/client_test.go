package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	// minio connects lazily; creation with a valid endpoint must succeed
	client, err := NewClient(Config{
		Endpoint:  "http://localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Endpoint: "localhost:9000"}.Enabled())
}
