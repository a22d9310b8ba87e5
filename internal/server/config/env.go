package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables the deployment already uses.
// Durations are given in minutes to match ACCESS_TOKEN_EXPIRE_MINUTES.
type envConfig struct {
	Address                  *string `env:"ADDRESS"`
	DatabaseURL              *string `env:"DATABASE_URL"`
	SecretKey                *string `env:"SECRET_KEY"`
	AccessTokenExpireMinutes *int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	BcryptCost               *int    `env:"BCRYPT_COST"`
	FrontendURL              *string `env:"FRONTEND_URL"`
}

// parseEnv overlays values from environment variables onto cfg. Unset
// variables leave the current values untouched.
func parseEnv(cfg *Config) {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.Address != nil {
		cfg.EndpointAddr = *e.Address
	}
	if e.DatabaseURL != nil {
		cfg.DatabaseDSN = *e.DatabaseURL
	}
	if e.SecretKey != nil {
		cfg.SecretKey = *e.SecretKey
	}
	if e.AccessTokenExpireMinutes != nil {
		cfg.AccessTokenValidityDuration = time.Duration(*e.AccessTokenExpireMinutes) * time.Minute
	}
	if e.BcryptCost != nil {
		cfg.BcryptCost = *e.BcryptCost
	}
	if e.FrontendURL != nil {
		cfg.FrontendOrigin = *e.FrontendURL
	}
}
