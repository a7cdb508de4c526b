package core_fx

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"wedplan/config"
	"wedplan/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideLogger, provideJWTManager)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) zerolog.Logger {
	return config.NewLogger(cfg)
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenMinutes)*time.Minute,
		time.Duration(cfg.RefreshTokenDays)*24*time.Hour,
	)
}
