package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ScorerConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("SCORER_PROVIDER", "http")
	os.Setenv("SCORER_BASE_URL", "http://scorer:9000")
	os.Setenv("SCORER_TIMEOUT_SECONDS", "2")
	defer func() {
		os.Unsetenv("SCORER_PROVIDER")
		os.Unsetenv("SCORER_BASE_URL")
		os.Unsetenv("SCORER_TIMEOUT_SECONDS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http", cfg.Scorer.Provider)
	assert.Equal(t, "http://scorer:9000", cfg.Scorer.BaseURL)
	assert.Equal(t, 2, cfg.Scorer.TimeoutSeconds)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SCORER_PROVIDER")
	os.Unsetenv("TREE_MAX_DEPTH")
	os.Unsetenv("DB_NAME")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "mock", cfg.Scorer.Provider)
	assert.Equal(t, 32, cfg.Tree.MaxDepth)
	assert.Equal(t, "clinical_pathways", cfg.Database.Database)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5433, User: "app", Password: "secret",
		Database: "clinical_pathways", SSLMode: "require",
	}

	assert.Equal(t,
		"host=db port=5433 user=app password=secret dbname=clinical_pathways sslmode=require",
		cfg.DatabaseDSN(),
	)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}
