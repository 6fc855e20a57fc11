package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process configuration, populated from the environment.
// A .env file in the working directory is honored when present.
type Config struct {
	// DataFile is the JSON roster file used by save/load.
	DataFile string
	// Store selects the persistence backend: "json" or "db".
	Store string
	// DBDSN is the database connection string for the db backend.
	// A postgres DSN selects postgres; anything else is a sqlite path.
	DBDSN string
	// Seed drives the deterministic sample-data builder.
	Seed int64
	// LoadOnStart makes the roster load mandatory at startup.
	LoadOnStart bool
}

func Load() Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := Config{
		DataFile: getEnv("GRADEBOOK_DATA_FILE", "students.json"),
		Store:    getEnv("GRADEBOOK_STORE", "json"),
		DBDSN:    os.Getenv("GRADEBOOK_DB_DSN"),
		Seed:     getEnvInt64("GRADEBOOK_SEED", 0),
	}
	cfg.LoadOnStart, _ = strconv.ParseBool(os.Getenv("GRADEBOOK_LOAD_ON_START"))
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
