package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the service.
type Config struct {
	AppName     string
	AppEnv      string
	AppPort     string
	DatabaseURL string
	RedisURL    string
	LogFile     string

	SessionTTL time.Duration

	// Seed bootstrap. The teacher account and the class list are created
	// out-of-band; when the respective tables are empty at boot the seeder
	// inserts these values.
	SeedTeacherName     string
	SeedTeacherEmail    string
	SeedTeacherPassword string
	SeedClasses         []string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an
// optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SEGAK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "SEGAK Fitness Tracker")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("log.file", "")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("seed.teacher_name", "")
	v.SetDefault("seed.teacher_email", "")
	v.SetDefault("seed.teacher_password", "")
	v.SetDefault("seed.classes", "")

	ttlString := v.GetString("session.ttl")
	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid session ttl: %w", err)
	}

	cfg := Config{
		AppName:             v.GetString("app.name"),
		AppEnv:              v.GetString("app.env"),
		AppPort:             v.GetString("app.port"),
		DatabaseURL:         v.GetString("database.url"),
		RedisURL:            v.GetString("redis.url"),
		LogFile:             v.GetString("log.file"),
		SessionTTL:          ttl,
		SeedTeacherName:     v.GetString("seed.teacher_name"),
		SeedTeacherEmail:    v.GetString("seed.teacher_email"),
		SeedTeacherPassword: v.GetString("seed.teacher_password"),
		SeedClasses:         splitList(v.GetString("seed.classes")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("redis url must be provided")
	}

	return cfg, nil
}

func splitList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
