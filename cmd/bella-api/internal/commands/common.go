package commands

import (
	"fmt"
	"time"

	"github.com/bella-carwash/bella-api/internal/app"
	"github.com/bella-carwash/bella-api/internal/infrastructure/auth"
	"github.com/bella-carwash/bella-api/internal/infrastructure/notifications"
	"github.com/bella-carwash/bella-api/internal/infrastructure/payments"
	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// runtime holds what every command needs before doing its own work
type runtime struct {
	cfg *config.RestConfig
	log logger.Logger
	db  *gorm.DB
}

func bootstrap(configPath string) (*runtime, error) {
	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	return &runtime{cfg: cfg, log: log, db: db}, nil
}

func (rt *runtime) close() {
	if err := persistence.CloseDB(rt.db); err != nil {
		rt.log.Error("Failed to close database connection: ", err)
	}
}

// services wires the application layer. recorder may be nil.
func (rt *runtime) services(recorder app.EventRecorder) (*app.Services, *auth.JWTIssuer, error) {
	repos, err := persistence.NewRepositories(rt.db, rt.log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	tokens, err := auth.NewJWTIssuer(rt.cfg.Auth.JWTSecret, rt.cfg.Auth.TokenTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	if rt.cfg.Auth.StripeWebhookSecret == "" {
		rt.log.Warn("STRIPE_WEBHOOK_SECRET is not set, webhook deliveries will be rejected")
	}

	services, err := app.NewServices(app.Dependencies{
		Repos:      repos,
		Tokens:     tokens,
		Hasher:     auth.NewBcryptHasher(bcrypt.DefaultCost),
		CodeSender: notifications.NewLogCodeSender(rt.log),
		Verifier:   payments.NewStripeVerifier(rt.cfg.Auth.StripeWebhookSecret),
		Recorder:   recorder,
		Logger:     rt.log,
		Now:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	rt.log.Info("Application services initialized successfully")
	return services, tokens, nil
}
