package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string
	AMQPURL     string
	SessionKey  string
}

// Load reads configuration from the environment. DATABASE_URL has no
// default: the whole application is useless without the backing store.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AMQPURL:     getEnv("AMQP_URL", ""),
		SessionKey:  getEnv("SESSION_SECRET", "devsessionsecret"),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
