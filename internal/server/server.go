// Package server exposes the RAMP codec and registry over HTTP for label
// tooling. The codec itself stays pure; this layer only shapes JSON.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/rampctl/internal/observability"
	"github.com/danmuck/rampctl/internal/ramp/registry"
)

const version = "0.1.0"

type Config struct {
	Addr        string
	CorsOrigins []string
}

type Server struct {
	cfg       Config
	reg       *registry.Registry
	router    *gin.Engine
	startedAt time.Time
}

func New(cfg Config, reg *registry.Registry) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if len(cfg.CorsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	s := &Server{
		cfg:       cfg,
		reg:       reg,
		router:    router,
		startedAt: time.Now(),
	}
	observability.Register()
	router.Use(s.measure)
	s.registerRoutes()
	return s
}

// Router exposes the gin engine for httptest callers.
func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) Run() error {
	log.Info().Str("addr", s.cfg.Addr).Msg("rampd listening")
	return s.router.Run(s.cfg.Addr)
}

func (s *Server) measure(c *gin.Context) {
	start := time.Now()
	c.Next()
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	observability.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
}
