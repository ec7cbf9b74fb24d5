// Package api exposes the HTTP surface: the chat endpoint streaming
// coordinator events over SSE, changeset review operations, health, and
// Prometheus metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suiteops/suitepilot/pkg/config"
	"github.com/suiteops/suitepilot/pkg/coordinator"
	"github.com/suiteops/suitepilot/pkg/database"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
)

// ChatProcessor handles one user message and streams events back.
type ChatProcessor interface {
	Process(ctx context.Context, identity models.Identity, message string) <-chan coordinator.Event
}

// Server is the API server.
type Server struct {
	cfg        *config.Config
	db         *database.Client
	chat       ChatProcessor
	changesets *services.ChangesetService
	audit      *services.AuditService

	engine *gin.Engine
	srv    *http.Server
}

// NewServer wires the router. The database client may be nil in tests that
// exercise handlers without a health check.
func NewServer(cfg *config.Config, db *database.Client, chat ChatProcessor, changesets *services.ChangesetService, audit *services.AuditService) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:        cfg,
		db:         db,
		chat:       chat,
		changesets: changesets,
		audit:      audit,
		engine:     gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery(), securityHeaders())
	if s.cfg != nil && len(s.cfg.Server.AllowedOrigins) > 0 {
		s.engine.Use(corsMiddleware(s.cfg.Server.AllowedOrigins))
	}

	s.engine.GET("/health", s.healthHandler)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{},
	)))

	v1 := s.engine.Group("/api/v1", identityMiddleware())
	v1.POST("/chat", s.chatHandler)
	v1.GET("/changesets/:id", s.getChangesetHandler)
	v1.GET("/workspaces/:id/changesets", s.listChangesetsHandler)
	v1.POST("/changesets/:id/transition", s.transitionChangesetHandler)
	v1.POST("/changesets/:id/apply", s.applyChangesetHandler)
	v1.GET("/audit", s.listAuditHandler)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
