// Package server provides the HTTP REST API for the talent screening
// service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/ai"
	"github.com/jonathan/talent-screen/internal/config"
	"github.com/jonathan/talent-screen/internal/db"
	"github.com/jonathan/talent-screen/internal/interview"
	"github.com/jonathan/talent-screen/internal/llm"
	"github.com/jonathan/talent-screen/internal/matching"
	"github.com/jonathan/talent-screen/internal/metrics"
	"github.com/jonathan/talent-screen/internal/notify"
	"github.com/jonathan/talent-screen/internal/server/middleware"
	"github.com/jonathan/talent-screen/internal/server/ratelimit"
	"github.com/jonathan/talent-screen/internal/skills"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	llmClient   llm.Client
	oracle      *ai.Oracle
	ranker      *matching.Ranker
	interviews  *interview.Service
	vocab       skills.Vocabulary
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	log         *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	APIKey         string
	VocabularyPath string
	Logger         *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	vocab := skills.Default()
	if cfg.VocabularyPath != "" {
		vocab, err = skills.Load(cfg.VocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill vocabulary: %w", err)
		}
	}

	oracle := ai.NewOracle(client, log)

	s := &Server{
		db:         database,
		llmClient:  client,
		oracle:     oracle,
		ranker:     matching.NewRanker(matching.NewScorer(oracle, log), log),
		interviews: interview.NewService(database, oracle, notify.NewLogNotifier(log), log),
		vocab:      vocab,
		log:        log,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // oracle calls can run long
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router: public auth and operational endpoints plus
// the authenticated API.
func (s *Server) routes() http.Handler {
	// Authenticated API surface
	api := http.NewServeMux()

	// Candidate endpoints
	api.HandleFunc("POST /candidates", s.handleCreateCandidate)
	api.HandleFunc("GET /candidates", s.handleListCandidates)
	api.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	api.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	api.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)
	api.HandleFunc("POST /candidates/{id}/resume", s.handleUploadResume)
	api.HandleFunc("GET /candidates/{id}/matches", s.handleCandidateMatches)
	api.HandleFunc("GET /candidates/{id}/analytics", s.handleCandidateAnalytics)
	api.HandleFunc("GET /candidates/{id}/interviews", s.handleListCandidateInterviews)

	// Job endpoints
	api.HandleFunc("POST /jobs", s.handleCreateJob)
	api.HandleFunc("GET /jobs", s.handleListJobs)
	api.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	api.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	api.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)
	api.HandleFunc("POST /jobs/{id}/questions", s.handlePreviewQuestions)
	api.HandleFunc("GET /jobs/{id}/stats", s.handleJobStats)

	// Interview endpoints
	api.HandleFunc("POST /interviews", s.handleScheduleInterview)
	api.HandleFunc("GET /interviews", s.handleListInterviews)
	api.HandleFunc("GET /interviews/{id}", s.handleGetInterview)
	api.HandleFunc("POST /interviews/{id}/start", s.handleStartInterview)
	api.HandleFunc("POST /interviews/{id}/complete", s.handleCompleteInterview)
	api.HandleFunc("POST /interviews/{id}/cancel", s.handleCancelInterview)
	api.HandleFunc("POST /interviews/{id}/questions", s.handleGenerateQuestions)
	api.HandleFunc("GET /interviews/{id}/questions", s.handleListQuestions)
	api.HandleFunc("GET /interviews/{id}/analytics", s.handleInterviewAnalytics)
	api.HandleFunc("POST /questions/{id}/response", s.handleSubmitResponse)

	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(api)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/", authed)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			s.log.Warn("failed to close model client", zap.Error(err))
		}
	}
	s.db.Close()
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
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
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging and the request counter.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.rawJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a success envelope around the payload.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	s.rawJSON(w, status, map[string]any{
		"status": "success",
		"data":   data,
	})
}

// errorResponse writes an error envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.rawJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

func (s *Server) rawJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since the service may run without a trusted proxy.
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

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining),
		zap.Time("reset", info.ResetTime))

	s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
}
