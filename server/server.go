// Package server exposes maze generation, solving and rendering over HTTP.
//
// Routes:
//
//	GET  /healthz                      503 until the listener is up, then 200
//	GET  /api/maze?width&height&barriers&seed
//	POST /api/solve                    {"rows": [...], "algorithm": "dfs|astar|all"}
//	POST /api/render?format=text|png|dot
//
// Client mistakes are answered with 400 and {"error": "..."}.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tevino/abool"

	"github.com/Naveen-Savi08/Maze-Solver/config"
)

const (
	// RequestIDHeader carries the per-request id in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey    = "request_id"
	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP front of the solver.
type Server struct {
	addr   string
	log    logrus.FieldLogger
	ready  *abool.AtomicBool
	engine *gin.Engine
}

// New builds the router for cfg. The server is not ready until Run binds
// its listener.
func New(cfg config.Config, log logrus.FieldLogger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		addr:  cfg.Addr,
		log:   log,
		ready: abool.New(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestID(), s.accessLog())
	engine.GET("/healthz", s.healthz)

	api := engine.Group("/api")
	{
		NewMazeController(cfg, log).Register(api)
	}
	s.engine = engine

	return s, nil
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Ready reports whether the server accepts traffic.
func (s *Server) Ready() bool { return s.ready.IsSet() }

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: shutdownTimeout}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.ready.Set()
	s.log.WithField("addr", ln.Addr().String()).Info("server listening")

	select {
	case <-ctx.Done():
		s.ready.UnSet()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info("server stopped")
		return nil
	case err := <-errCh:
		s.ready.UnSet()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) healthz(ctx *gin.Context) {
	if !s.ready.IsSet() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestID reuses an incoming X-Request-ID or assigns a fresh UUID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()
		s.log.WithFields(logrus.Fields{
			"request_id": requestID(ctx),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency":    time.Since(began).String(),
		}).Debug("request")
	}
}

func requestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
