package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	GitHubToken string
	GatewayURL  string
	GatewayKey  string
	Model       string
	AITimeout   time.Duration
	JWTSecret   string
	Neo4jURI    string
	Neo4jUser   string
	Neo4jPass   string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3001"),
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		GatewayURL:  getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1"),
		GatewayKey:  getEnv("AI_GATEWAY_KEY", ""),
		Model:       getEnv("AI_MODEL", "google/gemini-3-flash-preview"),
		AITimeout:   time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 120)) * time.Second,
		JWTSecret:   getEnv("JWT_SECRET", ""),
		Neo4jURI:    getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:   getEnv("NEO4J_USER", "neo4j"),
		Neo4jPass:   getEnv("NEO4J_PASSWORD", "codesimplify_password"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
