package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	StoreName   string
	DatabaseDSN string
	Persist     bool
}

// Load reads configuration from environment variables with reasonable
// defaults. A .env file in the working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	name := os.Getenv("STORE_NAME")
	if name == "" {
		name = "pharmacy-store"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "pharmacy.db"
	}

	persist := false
	if raw := os.Getenv("PERSIST"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("invalid PERSIST value %q, defaulting to false", raw)
		} else {
			persist = parsed
		}
	}

	return Config{StoreName: name, DatabaseDSN: dsn, Persist: persist}
}
