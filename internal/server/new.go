package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fraudwatch/internal/alerts"
	"fraudwatch/internal/feed"
	"fraudwatch/internal/stream"
	"fraudwatch/pkg/log"
)

// Server exposes the live feed state over a read-only HTTP surface.
// New() only wires dependencies and validates them; Start() (in
// server.go) binds the listener.
type Server struct {
	gin     *gin.Engine
	httpSrv *http.Server
	logger  log.Logger
	host    string
	port    int
	started time.Time

	store         *feed.Store
	notifications *feed.NotificationQueue
	source        stream.Source
	search        *alerts.SearchView
}

// Config is the constructor input for Server.
type Config struct {
	Host string
	Port int
	Mode string

	Store         *feed.Store
	Notifications *feed.NotificationQueue
	Source        stream.Source
	Search        *alerts.SearchView
}

// New creates a Server with the provided configuration. It does not
// start any goroutines; use Start for that.
func New(logger log.Logger, cfg Config) (*Server, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &Server{
		gin:           gin.New(),
		logger:        logger,
		host:          cfg.Host,
		port:          cfg.Port,
		started:       time.Now(),
		store:         cfg.Store,
		notifications: cfg.Notifications,
		source:        cfg.Source,
		search:        cfg.Search,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.gin.Use(gin.Recovery())
	srv.mapHandlers()

	return srv, nil
}

// Handler exposes the routed handler, mainly for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.gin
}

// validate ensures all required dependencies are provided.
func (s *Server) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.store == nil {
		return errors.New("feed store is required")
	}

	return nil
}
