package config_test

import (
	"testing"

	"github.com/Papipp/travelrek/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.APIPort)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_USER", "travelrek")
	t.Setenv("DB_NAME", "travelrek")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", cfg.DBHost)
	assert.Contains(t, cfg.DSN(), "host=db.example.com")
	assert.Contains(t, cfg.DSN(), "dbname=travelrek")
}
