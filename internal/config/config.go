package config

import "os"

type Config struct {
	HTTPPort string

	// Postgres DSN. Empty means in-memory storage (dev mode).
	DatabaseDSN string

	// Redis address for the reminder cache. Empty means in-process LRU.
	RedisAddr string

	Auth   AuthConfig
	AI     AIConfig
	Logger LoggerConfig
}

type AuthConfig struct {
	// Firebase web API key used by the Identity Toolkit lookup endpoint.
	// Empty disables token verification (dev mode, X-Debug-User-ID).
	FirebaseAPIKey string
}

type AIConfig struct {
	GroqAPIKey  string
	GroqBaseURL string
	ChatModel   string

	GeminiAPIKey string
	VisionModel  string
}

type LoggerConfig struct {
	Level  string
	Format string
	App    string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func Load() (*Config, error) {
	return &Config{
		HTTPPort:    getEnvOrDefault("PORT", "8080"),
		DatabaseDSN: os.Getenv("DB_DSN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		Auth: AuthConfig{
			FirebaseAPIKey: os.Getenv("FIREBASE_API_KEY"),
		},
		AI: AIConfig{
			GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
			GroqBaseURL:  getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			ChatModel:    getEnvOrDefault("CHAT_MODEL", "llama-3.3-70b-versatile"),
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			VisionModel:  getEnvOrDefault("VISION_MODEL", "gemini-1.5-flash"),
		},
		Logger: LoggerConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			App:    getEnvOrDefault("APP_NAME", "vitashifa"),
		},
	}, nil
}
