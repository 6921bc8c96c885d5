package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/fx"

	"github.com/exploride/social-gateway/internal/graph"
	"github.com/exploride/social-gateway/internal/graph/graphimpl"
	"github.com/exploride/social-gateway/internal/manifest"
	"github.com/exploride/social-gateway/internal/server"
	"github.com/exploride/social-gateway/pkg/config"
	"github.com/exploride/social-gateway/pkg/logger"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		manifest.New,
	),
	fx.Provide(
		fx.Annotate(
			graphimpl.New,
			fx.As(new(graph.Client)),
		),
	),
	fx.Provide(server.New),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, store *manifest.Store, srv *server.Server) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.Gallery.ReloadMinutes > 0 {
				interval := time.Duration(cfg.Gallery.ReloadMinutes) * time.Minute
				if err := store.ScheduleReload(interval); err != nil {
					log.Error("Failed to schedule manifest reload", "error", err)
				}
			}

			go func() {
				log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed to start", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			store.StopReload()
			return srv.Shutdown(ctx)
		},
	})
}
