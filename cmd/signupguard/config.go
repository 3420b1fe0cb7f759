package main

import (
	"github.com/dmitrymomot/signupguard/pkg/httpserver"
)

// appConfig is loaded from the environment and an optional .env file.
type appConfig struct {
	HTTP httpserver.Config

	Env          string `env:"APP_ENV" envDefault:"development"`
	Service      string `env:"APP_SERVICE" envDefault:"signupguard"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	LogFile      string `env:"LOG_FILE"`
	LogMaxSizeMB int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxAge    int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`

	GuidanceFile string `env:"GUIDANCE_FILE"`
	ScriptURL    string `env:"DATASTAR_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"`
}
