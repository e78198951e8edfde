// Package demo serves canned reviews from an in-process HTTP server so the
// browser can be tried without a real backend. It speaks the same
// /api/reviews_by_app contract, including the null payload and server
// error cases.
package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mcao2/reviews-browser/internal/reviews"
)

// Server is a running demo backend.
type Server struct {
	srv      *http.Server
	listener net.Listener
	logger   *zap.Logger
	done     chan struct{}
}

// NewHandler returns the demo router.
func NewHandler(logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	data := catalog(time.Now())

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/api/ready", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("API is ready"))
	})
	r.Get(reviews.ReviewsByAppPath, func(w http.ResponseWriter, r *http.Request) {
		appID := r.URL.Query().Get("app_id")
		if appID == "" {
			http.Error(w, "Missing app_id", http.StatusBadRequest)
			return
		}
		if appID == AppBroken {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		list, ok := data[appID]
		if !ok || appID == AppNull {
			_, _ = w.Write([]byte("null"))
			return
		}
		if err := json.NewEncoder(w).Encode(list); err != nil {
			logger.Error("encoding error", zap.Error(err))
		}
	})
	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("demo request",
				zap.String("path", r.URL.Path),
				zap.String("app_id", r.URL.Query().Get("app_id")),
				zap.String("correlation_id", r.Header.Get("X-Correlation-ID")),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

// Start listens on a random loopback port and serves the demo router.
func Start(logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("demo listen: %w", err)
	}

	s := &Server{
		srv: &http.Server{
			Handler:           NewHandler(logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("demo server stopped", zap.Error(err))
		}
	}()

	logger.Info("demo backend listening", zap.String("url", s.URL()))
	return s, nil
}

// URL is the base URL to point the client at.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Close shuts the server down and waits for the serve loop to exit.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	<-s.done
	return err
}
