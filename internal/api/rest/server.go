package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bella-carwash/bella-api/internal/api/rest/middleware"
	v1 "github.com/bella-carwash/bella-api/internal/api/rest/v1"
	"github.com/bella-carwash/bella-api/internal/app"
	"github.com/bella-carwash/bella-api/internal/domain/accounts"
	"github.com/bella-carwash/bella-api/internal/infrastructure/metrics"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence"
	"github.com/bella-carwash/bella-api/internal/infrastructure/ratelimit"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShutdownTimeout bounds how long in-flight requests may take to drain.
const ShutdownTimeout = 15 * time.Second

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Server   config.ServerSettings
	Services *app.Services
	Tokens   accounts.TokenIssuer
	Limiter  ratelimit.Store
	Metrics  *metrics.Metrics
	Logger   logger.Logger
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter builds the gin engine with the full middleware stack.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(deps.Server.TrustedProxies); err != nil {
		deps.Logger.Warn("Ignoring invalid trusted proxies, using the socket address: ", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Outermost first. The observers wrap compression so they see the final
	// status, and errors are rendered inside compression so the body is encoded.
	r.Use(
		middleware.AccessLog(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.SecurityHeaders(),
		middleware.Compression("/metrics"),
		middleware.ErrorHandler(deps.Server.IsProduction(), deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.RateLimit(deps.Limiter, deps.Metrics.RateLimited, deps.Logger),
	)
	r.Use(middleware.CORS(deps.Server.AllowedOrigins())...)
	r.Use(
		middleware.BodyLimit(deps.Server.BodyLimitBytes),
		middleware.RawBody(v1.BasePath+"/webhooks"),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	r.Static("/uploads", deps.Server.UploadsDir)

	v1.SetupRoutes(r, deps.Services, deps.Tokens)

	r.NoRoute(middleware.NotFound)
	return r
}

// Server runs the HTTP listener and owns the database client.
type Server struct {
	httpServer *http.Server
	db         *gorm.DB
	log        logger.Logger
}

// NewServer wraps handler in an http.Server listening on the configured port.
func NewServer(settings config.ServerSettings, handler http.Handler, db *gorm.DB, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + settings.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
		},
		db:  db,
		log: log,
	}
}

// Run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests and closes the database client. It returns nil after a
// graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.closeDB()
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("Server running on ", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		s.closeDB()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.log.Info("Shutdown signal received, shutting down gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	shutdownErr := s.httpServer.Shutdown(shutdownCtx)
	s.closeDB()
	if shutdownErr != nil {
		return fmt.Errorf("server forced to shutdown: %w", shutdownErr)
	}

	s.log.Info("Server stopped gracefully")
	return nil
}

func (s *Server) closeDB() {
	if s.db == nil {
		return
	}
	if err := persistence.CloseDB(s.db); err != nil {
		s.log.Error("Failed to close database connection: ", err)
		return
	}
	s.log.Info("Database connection closed")
}
