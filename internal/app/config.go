package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/utils"
)

type Config struct {
	HTTPPort       string
	RedisAddr      string
	VocabCacheTTL  time.Duration
	AllowedOrigins []string
}

// fileConfig is the optional YAML layout; environment variables override
// whatever the file sets.
type fileConfig struct {
	HTTPPort       string   `yaml:"http_port"`
	RedisAddr      string   `yaml:"redis_addr"`
	VocabCacheTTL  string   `yaml:"vocab_cache_ttl"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		HTTPPort:      "8080",
		VocabCacheTTL: 12 * time.Hour,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
		if fc.HTTPPort != "" {
			cfg.HTTPPort = fc.HTTPPort
		}
		if fc.RedisAddr != "" {
			cfg.RedisAddr = fc.RedisAddr
		}
		if fc.VocabCacheTTL != "" {
			ttl, err := time.ParseDuration(fc.VocabCacheTTL)
			if err != nil {
				return cfg, fmt.Errorf("parse vocab_cache_ttl: %w", err)
			}
			cfg.VocabCacheTTL = ttl
		}
		if len(fc.AllowedOrigins) > 0 {
			cfg.AllowedOrigins = fc.AllowedOrigins
		}
		log.Info("loaded config file", "path", path)
	}

	cfg.HTTPPort = utils.GetEnv("PORT", cfg.HTTPPort, log)
	cfg.RedisAddr = utils.GetEnv("REDIS_ADDR", cfg.RedisAddr, log)
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}
	return cfg, nil
}

func splitAndTrim(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
