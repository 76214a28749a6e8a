package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	DataDir  string        `env:"YOMU_DATA_DIR"`
	CacheTTL time.Duration `env:"YOMU_CACHE_TTL" envDefault:"1h"`
	Imgur    Imgur
}

type Imgur struct {
	// ClientID may be empty; reading imgur albums then fails with a missing
	// credential error instead of an anonymous network call.
	ClientID string `env:"IMGUR_CLIENT_ID"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	if cfg.DataDir == "" {
		homeDir, _ := os.UserHomeDir()
		cfg.DataDir = filepath.Join(homeDir, ".yomu")
	}

	return cfg
}

// DBPath is where the reading progress database lives.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "progress.db")
}
