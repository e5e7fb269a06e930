// Package server is the HTTP shell around the anonymization pipeline:
// routing, API-key auth, CORS, and the health/readiness probes.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/redactkit/redactkit/config"
	"github.com/redactkit/redactkit/observability"
	"github.com/redactkit/redactkit/pipeline"
)

// Server holds the state for the REST API server.
type Server struct {
	cfg    config.Config
	pipe   *pipeline.Pipeline
	router *gin.Engine
	log    observability.Logger
}

// New creates a Server around the given pipeline. A nil logger disables
// logging.
func New(cfg config.Config, pipe *pipeline.Pipeline, log observability.Logger) *Server {
	if log == nil {
		log = observability.NopLogger{}
	}
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		pipe:   pipe,
		router: r,
		log:    log.With(observability.String("component", "server")),
	}
	r.Use(s.requestID())
	r.Use(s.cors())
	r.Use(s.apiKey())
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ready", s.handleReady)
	s.router.POST("/api/v1/anonymize", s.handleAnonymize)
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("request_id", uuid.NewString())
		c.Next()
	}
}

func (s *Server) cors() gin.HandlerFunc {
	allowed := make(map[string]bool, len(s.cfg.AllowedOrigins))
	for _, o := range s.cfg.AllowedOrigins {
		allowed[o] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// apiKey rejects requests without the configured key. Probes stay open so
// load balancers and startup checks need no credentials.
func (s *Server) apiKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.APIKey == "" || c.Request.URL.Path == "/health" || c.Request.URL.Path == "/ready" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-Key") != s.cfg.APIKey {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}
