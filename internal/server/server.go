// Package server provides the HTTP API of the talent marketplace evaluators.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/config"
	"github.com/jonathan/talentbridge/internal/evaluation"
	"github.com/jonathan/talentbridge/internal/logger"
	"github.com/jonathan/talentbridge/internal/server/middleware"
	"github.com/jonathan/talentbridge/internal/server/ratelimit"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds server configuration
type Config struct {
	Addr       string
	CORSOrigin string
	RateLimit  *ratelimit.Config
	// JWT is required when Service is set.
	JWT *config.JWTConfig
	// DisplayKey switches anonymous tokens of the stateless endpoints to keyed hashes.
	DisplayKey []byte

	// Service backs the stored-entity routes. Without it those routes answer 503.
	Service *evaluation.Service
	Pinger  Pinger
	Logger  *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	service     *evaluation.Service
	pinger      Pinger
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	corsOrigin  string
	displayKey  []byte
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Service != nil && cfg.JWT == nil {
		return nil, fmt.Errorf("stored-entity routes require a JWT configuration")
	}

	s := &Server{
		service:     cfg.Service,
		pinger:      cfg.Pinger,
		logger:      cfg.Logger,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		corsOrigin:  cfg.CORSOrigin,
		displayKey:  cfg.DisplayKey,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}
	if cfg.JWT != nil {
		s.jwtService = NewJWTService(cfg.JWT)
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler wrapped in rate limiting, logging and CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Stateless evaluation endpoints
	mux.HandleFunc("POST /v1/eval/normalize", s.handleNormalize)
	mux.HandleFunc("POST /v1/eval/match", s.handleMatch)
	mux.HandleFunc("POST /v1/eval/anonymize/company", s.handleAnonymizeCompany)
	mux.HandleFunc("POST /v1/eval/anonymize/candidate", s.handleAnonymizeCandidate)
	mux.HandleFunc("POST /v1/eval/readiness", s.handleReadiness)
	mux.HandleFunc("POST /v1/eval/company-completeness", s.handleCompanyCompleteness)
	mux.HandleFunc("POST /v1/eval/job-health", s.handleJobHealthEval)
	mux.HandleFunc("POST /v1/eval/recruiting-health", s.handleRecruitingHealth)
	mux.HandleFunc("POST /v1/eval/deal", s.handleDeal)
	mux.HandleFunc("POST /v1/eval/bottlenecks", s.handleBottlenecksEval)
	mux.HandleFunc("POST /v1/eval/classify", s.handleClassify)
	mux.HandleFunc("POST /v1/eval/funnel", s.handleFunnel)

	// Stored entities, authenticated
	authed := s.authenticated()
	staff := func(h http.HandlerFunc) http.Handler {
		return authed(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleRecruiter)(h))
	}
	mux.Handle("GET /v1/jobs/{id}/health", authed(http.HandlerFunc(s.handleJobHealth)))
	mux.Handle("GET /v1/jobs/{id}/pipeline", authed(http.HandlerFunc(s.handleJobPipeline)))
	mux.Handle("GET /v1/jobs/{id}/bottlenecks", authed(http.HandlerFunc(s.handleJobBottlenecks)))
	mux.Handle("GET /v1/clients/{id}/dashboard", authed(http.HandlerFunc(s.handleClientDashboard)))
	mux.Handle("GET /v1/submissions/{id}", authed(http.HandlerFunc(s.handleSubmission)))
	mux.Handle("GET /v1/candidates/{id}/readiness", staff(s.handleCandidateReadiness))
	mux.Handle("GET /v1/companies/{id}/completeness", staff(s.handleCompanyCompletenessByID))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// authenticated returns the auth middleware, or a 503 responder when no JWT secret is
// configured.
func (s *Server) authenticated() func(http.Handler) http.Handler {
	if s.jwtService == nil {
		return func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.fail(w, r, &ErrUnavailable{Dependency: "authentication"})
			})
		}
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientAddr(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String(logger.FieldMethod, r.Method),
			zap.String(logger.FieldPath, r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int(logger.FieldStatus, rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "disabled"
	if s.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		database = "ok"
		if err := s.pinger.Ping(ctx); err != nil {
			s.logger.Warn("database ping failed", zap.Error(err))
			database = "unavailable"
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "database": database})
}

// clientAddr returns the IP of the direct peer. Forwarded headers are ignored.
func clientAddr(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"limit":   info.Limit,
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", clientAddr(r)),
		zap.String(logger.FieldPath, r.URL.Path),
		zap.Int("limit", info.Limit))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
