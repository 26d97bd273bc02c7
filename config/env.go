// Package config exposes the environment configuration of the egg store.
//
// Values come from the process environment, optionally topped up from a
// .env file in the working directory. The real environment always wins;
// .env only fills in blanks (godotenv.Load semantics).
//
// An unset DATABASE_URL is a supported mode: the store runs on demo data
// and never refuses to boot because of it.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseName = "eggstore"
	defaultAppPort      = "8000"
	defaultAppEnv       = "local"
)

var loadOnce sync.Once

// Load reads the optional .env file into the process environment.
// A missing .env is not an error — deployed environments set real vars.
func Load() error {
	var err error
	loadOnce.Do(func() {
		if e := godotenv.Load(".env"); e != nil && !os.IsNotExist(e) {
			err = e
		}
	})
	return err
}

// DatabaseURL returns the MongoDB connection string.
// Empty means "no store configured" and is a valid answer.
func DatabaseURL() string {
	_ = Load()
	return get("DATABASE_URL", "")
}

// DatabaseName returns the Mongo database name.
func DatabaseName() string {
	_ = Load()
	return get("DATABASE_NAME", defaultDatabaseName)
}

// AppPort returns the HTTP listen port.
func AppPort() string {
	_ = Load()
	return get("PORT", defaultAppPort)
}

// AppEnv returns the runtime environment name ("local", "production", ...).
func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// Get reads any config key by name with a fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
