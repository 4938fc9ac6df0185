package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/FACorreiaa/contabot/internal/domain/chat"
	chathandler "github.com/FACorreiaa/contabot/internal/domain/chat/handler"
	"github.com/FACorreiaa/contabot/internal/domain/dispatch"
	"github.com/FACorreiaa/contabot/internal/domain/interpret"
	"github.com/FACorreiaa/contabot/internal/domain/ledger"
	"github.com/FACorreiaa/contabot/pkg/auth"
	"github.com/FACorreiaa/contabot/pkg/config"
	"github.com/FACorreiaa/contabot/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	DB     *db.DB
	Logger *slog.Logger

	// Repositories
	LedgerRepo *ledger.Repository

	// Services
	TokenManager    *auth.TokenManager
	Classifier      *interpret.Classifier
	Dispatcher      *dispatch.Dispatcher
	LedgerHandlers  *ledger.Handlers
	SnapshotService *ledger.SnapshotService
	ChatService     *chat.Service

	// Handlers
	ChatHandler *chathandler.ChatHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	deps.initRepositories()

	if err := deps.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initDatabase initializes the database connection and runs migrations
func (d *Dependencies) initDatabase() error {
	database, err := db.New(db.Config{
		DSN:             d.Config.Database.DSN(),
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 10 * time.Minute,
	}, d.Logger)
	if err != nil {
		return err
	}

	d.DB = database

	if err := d.DB.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.Logger.Info("database connected and migrations completed successfully")
	return nil
}

// initRepositories initializes all repository layer dependencies
func (d *Dependencies) initRepositories() {
	d.LedgerRepo = ledger.NewRepository(d.DB.Pool)

	d.Logger.Info("repositories initialized")
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() error {
	jwtSecret := []byte(d.Config.Auth.JWTSecret)
	if len(jwtSecret) == 0 {
		return fmt.Errorf("jwt secret is required")
	}
	d.TokenManager = auth.NewTokenManager(jwtSecret, 1*time.Hour)

	d.Classifier = interpret.NewClassifier()

	// Dispatcher with one handler per action in the closed set.
	d.Dispatcher = dispatch.New(d.Logger)
	d.LedgerHandlers = ledger.NewHandlers(d.LedgerRepo, d.Logger)
	d.LedgerHandlers.RegisterAll(d.Dispatcher)

	d.SnapshotService = ledger.NewSnapshotService(d.LedgerRepo, d.Logger)

	d.ChatService = chat.NewService(
		d.Classifier,
		d.Dispatcher,
		d.SnapshotService,
		chat.NewTemplateFallback(),
		d.Logger,
	)

	d.Logger.Info("services initialized")
	return nil
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.ChatHandler = chathandler.NewChatHandler(d.ChatService, d.Logger)

	d.Logger.Info("handlers initialized")
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.DB != nil {
		d.DB.Close()
	}
	d.Logger.Info("cleanup completed")
}
