package config

import "os"

type Config struct {
	MongoURI          string
	MongoDatabase     string
	RedisAddr         string
	HTTPPort          string
	TelemetryEndpoint string
	TelemetryAPIKey   string
	TelemetryProject  string
	ClientKey         string
	JWTSecret         string
}

func Load() *Config {
	return &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGO_DB", "signaldb"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		TelemetryEndpoint: getEnv("TELEMETRY_ENDPOINT", ""),
		TelemetryAPIKey:   getEnv("TELEMETRY_API_KEY", ""),
		TelemetryProject:  getEnv("TELEMETRY_PROJECT", "signal-backend"),
		ClientKey:         getEnv("CLIENT_KEY", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
