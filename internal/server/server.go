// Package server exposes the ledger over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/rentbook/internal/accounts"
	"github.com/cleared-dev/rentbook/internal/importer"
	"github.com/cleared-dev/rentbook/internal/insight"
	"github.com/cleared-dev/rentbook/internal/ledger"
	"github.com/cleared-dev/rentbook/internal/logging"
)

// DefaultMaxImportBytes caps the body of POST /api/import.
const DefaultMaxImportBytes int64 = 10 << 20

// Options configures a Server. Store is required; the rest have defaults.
type Options struct {
	Store        *ledger.Store
	Chart        *accounts.Service
	Parsers      *importer.Registry
	Advisor      *insight.Advisor // nil disables /api/insight
	ManualContra string
	Log          *logrus.Logger
	Now          func() time.Time

	MaxImportBytes int64 // zero means DefaultMaxImportBytes
}

// Server holds the shared store and the collaborators the handlers use.
type Server struct {
	store        *ledger.Store
	chart        *accounts.Service
	parsers      *importer.Registry
	advisor      *insight.Advisor
	manualContra string
	log          *logrus.Logger
	now          func() time.Time
	maxImport    int64
}

// New creates a Server from opts.
func New(opts Options) *Server {
	s := &Server{
		store:        opts.Store,
		chart:        opts.Chart,
		parsers:      opts.Parsers,
		advisor:      opts.Advisor,
		manualContra: opts.ManualContra,
		log:          logging.OrDiscard(opts.Log),
		now:          opts.Now,
		maxImport:    opts.MaxImportBytes,
	}
	if s.store == nil {
		s.store = &ledger.Store{}
	}
	if s.chart == nil {
		s.chart = accounts.Default()
	}
	if s.parsers == nil {
		s.parsers = importer.DefaultRegistry(nil, s.log)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.maxImport <= 0 {
		s.maxImport = DefaultMaxImportBytes
	}
	return s
}

// Router builds the gin engine with CORS and request logging.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", s.healthCheck)
	api := r.Group("/api")
	api.GET("/transactions", s.listTransactions)
	api.POST("/transactions", s.addTransaction)
	api.DELETE("/transactions/:id", s.deleteTransaction)
	api.POST("/import", s.importTransactions)
	api.GET("/journal", s.getJournal)
	api.GET("/reports", s.getReports)
	api.GET("/accounts", s.listAccounts)
	api.GET("/insight", s.getInsight)
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Starting server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}
