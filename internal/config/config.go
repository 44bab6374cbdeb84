package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	MongoDBURI  string
	DBName      string
	JWTSecret   string
	JWTTTL      time.Duration
	LLMAPIKey   string
	LLMBaseURL  string
	LLMModel    string
	CORSOrigins string
	Environment string
	LogLevel    string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		MongoDBURI:  os.Getenv("MONGODB_URI"),
		DBName:      getEnvWithDefault("DB_NAME", "mutlu_baslangic"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
		LLMBaseURL:  getEnvWithDefault("LLM_BASE_URL", "https://llm.kindo.ai/v1"),
		LLMModel:    getEnvWithDefault("LLM_MODEL", "gpt-4o-mini"),
		CORSOrigins: getEnvWithDefault("CORS_ORIGINS", "*"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
	}

	ttlHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		h, err := strconv.Atoi(env)
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("JWT_EXPIRY_HOURS must be a positive integer")
		}
		ttlHours = h
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
