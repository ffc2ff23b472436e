package configs

import (
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
}

type ServerConfig struct {
	Port string
	Host string
	Mode string
}

// BackendConfig points at the remote store service that owns the product
// catalog and computes invoices. The base URL is the only knob the storefront
// strictly needs; everything else has local defaults.
type BackendConfig struct {
	BaseURL string
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "localhost"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("STORE_BACKEND_URL", "http://localhost:8000"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			GroupID: getEnv("KAFKA_GROUP_ID", "storefront-service"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
