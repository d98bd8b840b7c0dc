package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	config             *config.Config
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, deps *types.Dependencies) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	// A redirect would be answered before the key gate runs
	engine.RedirectTrailingSlash = false
	engine.Use(gin.Recovery())

	address := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	return &Server{
		engine:       engine,
		config:       cfg,
		dependencies: deps,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.ReadTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		return fmt.Errorf("server dependencies are not set")
	}

	s.setupMiddleware()

	return RegisterRoutes(s.engine, s.dependencies, s.config, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestID())
	s.engine.Use(RequestLogger(s.dependencies.Log()))

	if s.config.Security.EnableCORS {
		s.engine.Use(CORS(s.config.Security.CORSOrigins, s.config.Auth.Header))
	}

	if s.config.Server.MaxBodyBytes > 0 {
		s.engine.Use(RequestSizeLimitWithSize(s.config.Server.MaxBodyBytes))
	} else {
		s.engine.Use(RequestSizeLimit())
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on an existing listener
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
