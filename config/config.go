// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	GRPCAddr        string
	LogLevel        string
	LogFormat       string
	RegistryBackend string
	EventsDriver    string
	KafkaBrokers    []string
	EventsTopic     string
	EventsBuffer    int
	OTLPEndpoint    string
	ShutdownTimeout time.Duration
}

// Load reads every setting, falling back to defaults for unset variables.
func Load() (Config, error) {
	cfg := Config{
		GRPCAddr:        env("GRPC_ADDR", ":50051"),
		LogLevel:        env("LOG_LEVEL", "info"),
		LogFormat:       env("LOG_FORMAT", "json"),
		RegistryBackend: env("REGISTRY_BACKEND", "memory"),
		EventsDriver:    env("EVENTS_DRIVER", ""),
		KafkaBrokers:    splitList(env("KAFKA_BROKERS", "localhost:9092")),
		EventsTopic:     env("EVENTS_TOPIC", "coffee.orders"),
		OTLPEndpoint:    env("OTLP_ENDPOINT", ""),
	}

	var err error
	if cfg.EventsBuffer, err = strconv.Atoi(env("EVENTS_BUFFER", "1024")); err != nil || cfg.EventsBuffer <= 0 {
		return Config{}, fmt.Errorf("EVENTS_BUFFER: want a positive integer, got %q", os.Getenv("EVENTS_BUFFER"))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(env("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := oneOf("LOG_FORMAT", cfg.LogFormat, "json", "console"); err != nil {
		return Config{}, err
	}
	if err := oneOf("REGISTRY_BACKEND", cfg.RegistryBackend, "memory", "pebble"); err != nil {
		return Config{}, err
	}
	if err := oneOf("EVENTS_DRIVER", cfg.EventsDriver, "", "kafka-go", "sarama"); err != nil {
		return Config{}, err
	}
	if cfg.EventsDriver != "" && len(cfg.KafkaBrokers) == 0 {
		return Config{}, fmt.Errorf("KAFKA_BROKERS: required when EVENTS_DRIVER=%s", cfg.EventsDriver)
	}
	return cfg, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func oneOf(name, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%s: unsupported value %q", name, v)
}
