package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-time-tracker/config"
	"calendar-time-tracker/pkg/gcalendar"
	"calendar-time-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Tracker domain
	gcalClient *gcalendar.Client
	trackerCfg config.TrackerConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Tracker domain
	GCalClient *gcalendar.Client
	Tracker    config.TrackerConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		gcalClient:  cfg.GCalClient,
		trackerCfg:  cfg.Tracker,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.gcalClient == nil {
		return errors.New("calendar client is required")
	}
	return nil
}
