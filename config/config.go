package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	BcryptCost int
	StaticDir  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cost, err := strconv.Atoi(get("BCRYPT_COST", "10"))
	if err != nil {
		cost = 10
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Europe/Paris"),
		DBPath:     get("DB_PATH", "notations.db"),
		BcryptCost: cost,
		StaticDir:  get("STATIC_DIR", "static"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
