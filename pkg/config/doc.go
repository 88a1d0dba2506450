// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with `env` tags understood by
// github.com/caarlos0/env/v11; values can also come from .env files read with
// github.com/joho/godotenv. Each type is parsed once and cached.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The CLI passes --env-file paths to LoadEnv before the first Load. Tests use
// ResetCache after changing the environment.
package config
