package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/cmd/fx/auth_fx"
	"wedplan/cmd/fx/budget_fx"
	"wedplan/cmd/fx/core_fx"
	"wedplan/cmd/fx/db_fx"
	"wedplan/cmd/fx/event_fx"
	"wedplan/cmd/fx/gift_fx"
	"wedplan/cmd/fx/guest_fx"
	"wedplan/cmd/fx/invitation_fx"
	"wedplan/cmd/fx/lookup_fx"
	"wedplan/cmd/fx/media_fx"
	"wedplan/cmd/fx/task_fx"
	"wedplan/cmd/fx/vendor_fx"
	"wedplan/config"
	"wedplan/internal/api"
	"wedplan/internal/infra"
)

func main() {
	app := fx.New(
		core_fx.Module,
		db_fx.Module,
		auth_fx.Module,
		lookup_fx.Module,
		guest_fx.Module,
		event_fx.Module,
		invitation_fx.Module,
		vendor_fx.Module,
		budget_fx.Module,
		task_fx.Module,
		gift_fx.Module,
		media_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(prepareDatabase),
		fx.Invoke(startServer),
	)

	app.Run()
}

func prepareDatabase(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	if err := infra.Migrate(db); err != nil {
		return err
	}
	return infra.Seed(db, cfg, logger)
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger zerolog.Logger, db *gorm.DB) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("http server listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("http server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down http server")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return infra.ClosePostgresql(db)
		},
	})
}
