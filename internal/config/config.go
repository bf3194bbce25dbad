package config

import "os"

type Config struct {
	ServerPort     string
	MongoURI       string
	MongoDatabase  string
	RabbitURL      string
	RabbitExchange string
	RedisAddr      string
	AllowedOrigins string
	LogLevel       string
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("MONGO_DATABASE", "quest_read"),
		RabbitURL:      getEnv("RABBITMQ_URI", ""),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
