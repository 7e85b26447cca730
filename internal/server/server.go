// Package server provides the HTTP REST API for the voice onboarding engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/jonathan/voice-onboarding/internal/onboarding"
	"github.com/jonathan/voice-onboarding/internal/server/middleware"
	"github.com/jonathan/voice-onboarding/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	engine        *onboarding.Engine
	rateLimiter   *ratelimit.Limiter
	defaultLocale string
	allowedOrigin string
}

// Config holds server configuration
type Config struct {
	Port int
	// DefaultLocale is used when a request omits its locale.
	DefaultLocale string
	AllowedOrigin string
	// RateLimit overrides the RATE_LIMIT_* environment configuration.
	RateLimit *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config, engine *onboarding.Engine) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("server requires an onboarding engine")
	}

	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		engine:        engine,
		rateLimiter:   ratelimit.NewLimiter(rateConfig),
		defaultLocale: cfg.DefaultLocale,
		allowedOrigin: cfg.AllowedOrigin,
	}
	if s.allowedOrigin == "" {
		s.allowedOrigin = "*"
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// apiPrefix is the version prefix of every API route.
const apiPrefix = "/v1"

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	// Routes stay on the root router so its 404 and 405 handlers cover them.
	r.HandleFunc(apiPrefix+"/validate", s.handleValidate).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/validate/batch", s.handleValidateBatch).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/intent", s.handleIntent).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/questions", s.handleQuestions).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/questions/{key}", s.handleQuestion).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/info", s.handleInfo).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/reload", s.handleReload).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.errorResponse(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return middleware.RequestID(s.withLogging(s.withRateLimit(s.withCORS(r))))
}

// Start begins listening for requests. It blocks until SIGINT or SIGTERM and
// reloads reference data on SIGHUP.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(stop)
	defer signal.Stop(hup)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[serve] Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

wait:
	for {
		select {
		case <-hup:
			_ = s.reload()
		case err := <-serveErr:
			s.rateLimiter.Stop()
			return fmt.Errorf("server error: %w", err)
		case <-stop:
			break wait
		}
	}

	log.Println("[serve] Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("[serve] Server stopped")
	return nil
}

// Shutdown gracefully stops the HTTP server and the rate limiter.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) reload() error {
	start := time.Now()
	if err := s.engine.Reload(); err != nil {
		log.Printf("[reload] failed, keeping previous reference data: %v", err)
		return err
	}
	log.Printf("[reload] reference data reloaded in %v", time.Since(start))
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := middleware.GetRequestID(r)
		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.Printf("[%s] %s %d completed in %v id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorFrom writes err with the status HTTPStatus assigns to it.
func (s *Server) errorFrom(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[error] %v", err)
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		retry := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = retry
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
	}

	log.Printf("[rate-limit] Rate limit exceeded: client=%s path=%s limit=%d id=%s",
		s.extractClientID(r), r.URL.Path, info.Limit, middleware.GetRequestID(r))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
