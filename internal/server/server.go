package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/exploride/social-gateway/internal/graph"
	"github.com/exploride/social-gateway/internal/manifest"
	"github.com/exploride/social-gateway/pkg/config"
	"github.com/exploride/social-gateway/pkg/logger"
	"github.com/exploride/social-gateway/pkg/metrics"
)

type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	cfg        *config.Config
	logger     logger.Logger
	graph      graph.Client
	manifest   *manifest.Store
}

type Opts struct {
	fx.In

	Config   *config.Config
	Logger   logger.Logger
	Graph    graph.Client
	Manifest *manifest.Store
}

func New(opts Opts) *Server {
	metrics.Init()

	if opts.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      opts.Config,
		logger:   opts.Logger.WithComponent("Server"),
		graph:    opts.Graph,
		manifest: opts.Manifest,
	}

	engine := gin.New()
	engine.Use(
		LoggingMiddleware(s.logger),
		RecoveryMiddleware(s.logger),
		MetricsMiddleware(),
		CORSMiddleware(opts.Config.Cors.AllowedOrigins),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.GET("/ig/media", s.handleInstagramMedia)
	api.GET("/fb/posts", s.handlePagePosts)
	api.GET("/fb/oembed", s.handleOEmbed)
	api.GET("/gallery", s.handleGallery)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	s.engine = engine
	return s
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.App.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
