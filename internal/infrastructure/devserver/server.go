// Package devserver serves a local navigation document over HTTP so a shell
// can be pointed at it while the document is being written.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	// DocumentPath mirrors the path of the production endpoint.
	DocumentPath    = "/api.php"
	shutdownTimeout = 5 * time.Second
)

// Server serves the document read from source on every request.
type Server struct {
	source   port.SchemaSource
	pagesDir string
	logger   zerolog.Logger
}

// New creates a server. When pagesDir is set its files are served under
// /pages/ so web content screens can point at local pages.
func New(source port.SchemaSource, pagesDir string, logger zerolog.Logger) *Server {
	return &Server{source: source, pagesDir: pagesDir, logger: logger}
}

// Router returns the HTTP routes of the server.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.HandleFunc(DocumentPath, s.serveDocument).Methods(http.MethodGet)
	r.HandleFunc("/", s.serveDocument).Methods(http.MethodGet)
	r.HandleFunc("/schema.json", s.serveSchema).Methods(http.MethodGet)

	if s.pagesDir != "" {
		r.PathPrefix("/pages/").Handler(http.StripPrefix("/pages/", http.FileServer(http.Dir(s.pagesDir))))
	}
	return r
}

func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request) {
	raw, err := s.source.Fetch(r.Context())
	if err != nil {
		s.logger.Warn().Err(err).Msg("document unavailable")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(raw); err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode document")
	}
}

func (s *Server) serveSchema(w http.ResponseWriter, _ *http.Request) {
	data, err := config.DocumentSchema()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	_, _ = w.Write(data)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Serve runs the server on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return logging.WithContext(ctx, s.logger) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("serving navigation document")
	return s.Serve(ctx, ln)
}
