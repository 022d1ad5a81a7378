package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"travelplan/cmd/fx/controllers_fx"
	"travelplan/cmd/fx/execution_log_fx"
	"travelplan/cmd/fx/prompt_fx"
	"travelplan/cmd/fx/province_fx"
	"travelplan/internal/config"
	"travelplan/internal/infra"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	infra.ConfigureLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	fx.New(appOptions(cfg)).Run()
}

func appOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		execution_log_fx.Select(cfg.ExecutionLogEnabled),
		prompt_fx.Module,
		province_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	server := &http.Server{Addr: ":" + cfg.Port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
