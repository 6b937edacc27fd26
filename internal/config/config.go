package config // package config loads application configuration from environment variables

import (
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a sensible default so the
// service can boot on a developer machine with nothing but a local MySQL.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	DBUser      string // database username
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
	SeedMovies  bool   // insert the default movie catalog into an empty store
	RunConsumer bool   // start the booking event consumer goroutine
}

// Load reads configuration values from environment variables and returns a
// Config.  Unset variables fall back to defaults; the only value most
// deployments override is APP_PORT.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),           // environment (dev/test/prod)
		Port:        getenv("APP_PORT", "3000"),         // port to bind the HTTP server
		DBUser:      getenv("DB_USER", "root"),          // database user
		DBPass:      os.Getenv("DB_PASS"),               // database password (empty allowed)
		DBHost:      getenv("DB_HOST", "localhost"),     // database host
		DBPort:      getenv("DB_PORT", "3306"),          // database port
		DBName:      getenv("DB_NAME", "movie_booking"), // database name
		SeedMovies:  envBool("SEED_MOVIES", true),       // seed catalog when empty
		RunConsumer: envBool("CONSUMER_ENABLED", true),  // run the broker consumer
	}
}

// getenv returns the value of an environment variable or a default when the
// variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
