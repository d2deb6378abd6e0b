package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and optionally a file).
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	HTTP   HTTPConfig
	CORS   CORSConfig
	Static StaticConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// MongoConfig MongoDB connection settings.
// URI is mandatory: the server refuses to start without a store location.
type MongoConfig struct {
	URI      string // mongodb://host:port or mongodb+srv://...
	Database string
}

// Validate reports whether the store location is usable.
func (c MongoConfig) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	return nil
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig allowed origin for browser clients.
type CORSConfig struct {
	AllowOrigins string // "*" allows every origin
}

// StaticConfig location of the HTML pages served next to the API.
type StaticConfig struct {
	Dir string
}

// Load reads configuration from environment variables (and optionally a file).
// Env vars win. Expected names: APP_ENV, MONGO_URI, MONGO_DB, HTTP_PORT, FRONTEND_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional configuration file (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "coffee-manager"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", ""),
			Database: getString(v, "MONGO_DB", "coffeemanager"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		CORS: CORSConfig{
			AllowOrigins: getString(v, "FRONTEND_URL", "*"),
		},
		Static: StaticConfig{
			Dir: getString(v, "STATIC_DIR", "./public"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
