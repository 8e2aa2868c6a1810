// Package upload is the local image-upload endpoint the admin client posts
// images to before referencing them by URL in create/edit payloads.
package upload

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soley/admin-cli/pkg/log"
)

const (
	// Route is where multipart uploads are accepted.
	Route = "/api/upload"

	// FormField is the multipart field carrying the image.
	FormField = "file"

	shutdownTimeout = 5 * time.Second
)

// Server holds all dependencies for the upload endpoint.
type Server struct {
	gin      *gin.Engine
	l        log.Logger
	addr     string
	mode     string
	storage  Storage
	maxBytes int64
	limiter  *rateLimiter
	static   string
	now      func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger  log.Logger
	Addr    string
	Mode    string
	Storage Storage

	// MaxBytes defaults to 5MB.
	MaxBytes int64
	// RatePerMinute is the per-client request allowance; 0 disables limiting.
	RatePerMinute int
	// StaticPath, when set and Storage is a *DiskStorage, serves stored files.
	StaticPath string
}

// New creates the server and registers its routes.
func New(cfg Config) (*Server, error) {
	if cfg.Mode == "" {
		cfg.Mode = gin.ReleaseMode
	}
	gin.SetMode(cfg.Mode)

	srv := &Server{
		gin:      gin.New(),
		l:        cfg.Logger,
		addr:     cfg.Addr,
		mode:     cfg.Mode,
		storage:  cfg.Storage,
		maxBytes: cfg.MaxBytes,
		static:   cfg.StaticPath,
		now:      time.Now,
	}
	if srv.maxBytes <= 0 {
		srv.maxBytes = DefaultMaxBytes
	}
	if cfg.RatePerMinute > 0 {
		srv.limiter = newRateLimiter(cfg.RatePerMinute)
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *Server) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	if srv.addr == "" {
		return errors.New("addr is required")
	}
	return nil
}

func (srv *Server) mapHandlers() {
	srv.gin.Use(gin.Recovery())

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.POST(Route, srv.rateLimit(), srv.handleUpload)

	if disk, ok := srv.storage.(*DiskStorage); ok && srv.static != "" {
		srv.gin.Static(srv.static, disk.Dir)
	}
}

// Handler exposes the router, mainly for tests.
func (srv *Server) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "upload server listening on %s (POST %s)", srv.addr, Route)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Infof(ctx, "shutting down upload server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "upload server forced to shutdown: %v", err)
		return err
	}
	return nil
}

func (srv *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "soley-upload",
	})
}
