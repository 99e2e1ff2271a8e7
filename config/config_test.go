package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "memory", cfg.RegistryBackend)
	assert.Empty(t, cfg.EventsDriver)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 1024, cfg.EventsBuffer)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRPC_ADDR", "127.0.0.1:6000")
	t.Setenv("REGISTRY_BACKEND", "pebble")
	t.Setenv("EVENTS_DRIVER", "sarama")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("EVENTS_BUFFER", "16")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6000", cfg.GRPCAddr)
	assert.Equal(t, "pebble", cfg.RegistryBackend)
	assert.Equal(t, "sarama", cfg.EventsDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 16, cfg.EventsBuffer)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"REGISTRY_BACKEND": "redis",
		"EVENTS_DRIVER":    "nats",
		"LOG_FORMAT":       "xml",
		"EVENTS_BUFFER":    "-1",
		"SHUTDOWN_TIMEOUT": "soon",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), k)
		})
	}
}

func TestLoadRequiresBrokersForEvents(t *testing.T) {
	t.Setenv("EVENTS_DRIVER", "kafka-go")
	t.Setenv("KAFKA_BROKERS", " , ")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
