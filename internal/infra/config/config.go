package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates application configuration loaded from the environment.
type Config struct {
	Env              string
	HTTPAddr         string
	StorageMode      string
	MongoURI         string
	MongoDB          string
	MongoTimeout     time.Duration
	KafkaBrokers     []string
	KafkaTopicPrefix string
	FixturesPath     string
	ShutdownGrace    time.Duration
}

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		StorageMode:      strings.ToLower(getEnv("STORAGE_MODE", StorageMemory)),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "hostbook"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		FixturesPath:     getEnv("FIXTURES_PATH", ""),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, raw := range strings.Split(brokers, ",") {
			if b := strings.TrimSpace(raw); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	mongoTimeout, err := parseDurationEnv("MONGO_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.MongoTimeout = mongoTimeout

	grace, err := parseDurationEnv("SHUTDOWN_GRACE", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.ShutdownGrace = grace

	switch cfg.StorageMode {
	case StorageMemory, StorageMongo:
	default:
		return Config{}, fmt.Errorf("config: unknown STORAGE_MODE %q", cfg.StorageMode)
	}
	if cfg.StorageMode == StorageMongo && cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("config: MONGO_URI required when STORAGE_MODE=%s", StorageMongo)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
