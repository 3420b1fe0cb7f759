// Package config loads application configuration from the environment.
//
// It wraps github.com/joho/godotenv, which merges optional .env files into
// the process environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct described with `env` and `envDefault` tags.
//
// # Usage
//
//	type Config struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config]()          // reads ./.env if present
//	cfg, err := config.Load[Config]("local.env") // explicit files
//
// # Error Handling
//
// Parsing failures are wrapped with ErrParsingConfig; unreadable or malformed
// .env files with ErrLoadingEnvFile. A missing .env file is not an error.
package config
