package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/alexiusacademia/goifd/internal/config"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ShutdownTimeout bounds how long open requests may run after a stop signal
const ShutdownTimeout = 5 * time.Second

// Server exposes the diagram computation over HTTP
type Server struct {
	cfg     config.Server
	log     *log.Logger
	limiter *IPRateLimiter
	router  *mux.Router
}

// New creates a server with its routes registered
func New(cfg config.Server, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:     cfg,
		log:     logger,
		limiter: NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.limiter.LimitMiddleware)

	h := &Handler{Samples: s.cfg.Samples, MaxSamples: s.cfg.MaxSamples}
	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/limits", h.Limits).Methods("GET")
	api.HandleFunc("/diagram", h.Diagram).Methods("GET", "POST")
	api.HandleFunc("/diagram.{format:png|svg|pdf}", h.Image).Methods("GET")
	api.HandleFunc("/diagram.{format:csv|xlsx}", h.Table).Methods("GET")

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found", Kind: "request"})
	})
}

// Handler returns the router wrapped in CORS and access logging
func (s *Server) Handler() http.Handler {
	return s.accessLog(CORS(s.router))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Printf("Starting server on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return errors.Wrapf(err, "could not listen on %s", s.cfg.Addr)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

// CORS allows browser front ends on other origins to call the API
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Printf("%s %s %d %s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Microsecond))
	})
}
