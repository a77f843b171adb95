package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	APIPrefix string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests      int
	WindowMinutes int
}

// ErrMissingMongoURI aborts startup; there is no usable default for the
// store connection string.
var ErrMissingMongoURI = errors.New("MONGO_URI is required")

func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("NODE_ENV", "development")
	viper.SetDefault("API_PREFIX", "/api")
	viper.SetDefault("MONGO_DATABASE", "catalog")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	mongoURI := viper.GetString("MONGO_URI")
	if mongoURI == "" {
		return nil, ErrMissingMongoURI
	}

	return &Config{
		Server: ServerConfig{
			Port:      viper.GetString("PORT"),
			Env:       viper.GetString("NODE_ENV"),
			APIPrefix: viper.GetString("API_PREFIX"),
		},
		Mongo: MongoConfig{
			URI:      mongoURI,
			Database: viper.GetString("MONGO_DATABASE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests:      viper.GetInt("RATE_LIMIT_REQUESTS"),
			WindowMinutes: viper.GetInt("RATE_LIMIT_WINDOW_MINUTES"),
		},
	}, nil
}

// IsDevelopment reports whether the server runs with development settings
// (request logging, verbose error detail).
func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}
