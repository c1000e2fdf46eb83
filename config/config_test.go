package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "dev", cfg.Server.AppEnv)
	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "orders.events", cfg.Kafka.Topic)
	assert.Equal(t, []string{"http://localhost:9200"}, cfg.Elastic.Addresses)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg := LoadEnv()

	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, ":9000", cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnv_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "lots")
	t.Setenv("REDIS_DB", "")

	cfg := LoadEnv()

	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 0, cfg.Redis.DB)
}
