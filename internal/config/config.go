package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"fsanano/item-catalog/internal/logging"
)

type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration

	Logging logging.Config

	Client struct {
		APIURL  string
		Timeout time.Duration
		// CacheTTL of zero disables the client's read cache.
		CacheTTL time.Duration
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	logDefaults := logging.DefaultConfig()
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Logging: logging.Config{
			Level:       getEnv("LOG_LEVEL", logDefaults.Level),
			Format:      getEnv("LOG_FORMAT", logDefaults.Format),
			Output:      getEnv("LOG_OUTPUT", logDefaults.Output),
			Development: os.Getenv("LOG_DEVELOPMENT") == "true",
		},
	}

	var err error
	cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.Client.APIURL = getEnv("CATALOG_API_URL", "http://localhost:"+cfg.ServerPort)
	cfg.Client.Timeout, err = getDuration("CLIENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.Client.CacheTTL, err = getOptionalDuration("CLIENT_CACHE_TTL")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

// getOptionalDuration defaults to zero and accepts zero as "off".
func getOptionalDuration(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
