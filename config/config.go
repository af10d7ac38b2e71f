// Package config provides configuration management for the optimizer service.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CacheConfig holds snapshot cache configuration.
type CacheConfig struct {
	TTL time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("OPTIMIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("rate_limit", 100)
	v.SetDefault("rate_window", time.Minute)
	v.SetDefault("cors_origins", "")
	v.SetDefault("swagger_user", "")
	v.SetDefault("swagger_pass", "")
	v.SetDefault("cache_ttl", 30*time.Second)
	v.SetDefault("auth_enabled", false)
	v.SetDefault("api_keys", "")
	v.SetDefault("mongodb_uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb_database", "optimizer_service")
	v.SetDefault("mongodb_logs_ttl", 30*24*time.Hour)
	v.SetDefault("mongodb_enabled", false)
	v.SetDefault("circuit_breaker_failure_threshold", 5)
	v.SetDefault("circuit_breaker_success_threshold", 2)
	v.SetDefault("circuit_breaker_timeout", 30*time.Second)

	return Config{
		Server: ServerConfig{
			Port:        v.GetString("port"),
			RateLimit:   v.GetInt("rate_limit"),
			RateWindow:  v.GetDuration("rate_window"),
			CORSOrigins: parseCORSOrigins(v.GetString("cors_origins")),
			SwaggerUser: v.GetString("swagger_user"),
			SwaggerPass: v.GetString("swagger_pass"),
		},
		Cache: CacheConfig{
			TTL: v.GetDuration("cache_ttl"),
		},
		Auth: AuthConfig{
			Enabled: v.GetBool("auth_enabled"),
			APIKeys: parseAPIKeys(v.GetString("api_keys")),
		},
		Database: DatabaseConfig{
			URI:                            v.GetString("mongodb_uri"),
			DatabaseName:                   v.GetString("mongodb_database"),
			LogsTTL:                        v.GetDuration("mongodb_logs_ttl"),
			Enabled:                        v.GetBool("mongodb_enabled"),
			CircuitBreakerFailureThreshold: v.GetInt("circuit_breaker_failure_threshold"),
			CircuitBreakerSuccessThreshold: v.GetInt("circuit_breaker_success_threshold"),
			CircuitBreakerTimeout:          v.GetDuration("circuit_breaker_timeout"),
		},
	}
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
