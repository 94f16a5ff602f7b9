// Package config loads typed configuration from environment variables.
//
// Load reads optional dotenv files with github.com/joho/godotenv (existing
// process variables always win) and then parses the environment into a
// struct with github.com/caarlos0/env/v11 field tags:
//
//	type Config struct {
//	    Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
//	    Storage string `env:"IMAGE_STORAGE" envDefault:"local"`
//	}
//
//	cfg, err := config.Load[Config]()
//	if err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// A missing dotenv file is not an error. MustLoad panics instead of returning
// an error and is meant for main packages.
package config
