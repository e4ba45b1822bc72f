package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/leadflow/leadflow/config"
	"github.com/leadflow/leadflow/internal/database"
	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/internal/events"
	httpHandler "github.com/leadflow/leadflow/internal/http"
	"github.com/leadflow/leadflow/internal/http/middleware"
	"github.com/leadflow/leadflow/internal/repository"
	"github.com/leadflow/leadflow/internal/service"
	"github.com/leadflow/leadflow/pkg/logger"
	"github.com/leadflow/leadflow/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetHandler() http.Handler
	GetDB() *sql.DB
	GetEventBus() domain.EventBus

	GetLeadRepository() domain.LeadRepository
	GetGroupRepository() domain.GroupRepository
	GetCampaignRepository() domain.CampaignRepository

	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	InitTracing() error
	InitDB() error
	InitRepositories() error
	InitServices() error
	InitEvents() error
	InitHandlers() error

	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config   *config.Config
	logger   logger.Logger
	db       *sql.DB
	eventBus *domain.InMemoryEventBus
	tracer   *tracing.Provider
	fwd      *events.AMQPForwarder

	leadRepo     domain.LeadRepository
	groupRepo    domain.GroupRepository
	campaignRepo domain.CampaignRepository

	leadService         *service.LeadService
	groupService        *service.GroupService
	campaignService     *service.CampaignService
	groupLeadService    *service.GroupLeadService
	campaignLeadService *service.CampaignLeadService

	mux     *http.ServeMux
	handler http.Handler
	server  *http.Server

	serverMu      sync.RWMutex
	serverStarted chan struct{}

	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithEventForwarder replaces the broker connection made from config
func WithEventForwarder(f *events.AMQPForwarder) AppOption {
	return func(a *App) {
		a.fwd = f
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing and metrics exporters
func (a *App) InitTracing() error {
	provider, err := tracing.InitTracing(&a.config.Tracing, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.tracer = provider
	return nil
}

// InitDB connects to PostgreSQL and bootstraps the schema
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	cfg := &a.config.Database
	a.logger.WithFields(map[string]interface{}{
		"host":    cfg.Host,
		"port":    cfg.Port,
		"user":    cfg.User,
		"dbname":  cfg.DBName,
		"sslmode": cfg.SSLMode,
	}).Info("Connecting to database")

	db, err := database.Connect(context.Background(), cfg, a.config.Tracing.Enabled)
	if err != nil {
		a.logger.Error(err.Error())
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.logger.Info("Database schema ready")
	a.db = db
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	a.leadRepo = repository.NewLeadRepository(a.db)
	a.groupRepo = repository.NewGroupRepository(a.db)
	a.campaignRepo = repository.NewCampaignRepository(a.db)
	return nil
}

// InitServices initializes the event bus and all services
func (a *App) InitServices() error {
	a.eventBus = domain.NewInMemoryEventBus()

	a.leadService = service.NewLeadService(a.leadRepo, a.eventBus, a.logger)
	a.groupService = service.NewGroupService(a.groupRepo, a.logger)
	a.campaignService = service.NewCampaignService(a.campaignRepo, a.logger)
	a.groupLeadService = service.NewGroupLeadService(a.groupRepo, a.leadRepo, a.eventBus, a.logger)
	a.campaignLeadService = service.NewCampaignLeadService(a.campaignRepo, a.leadRepo, a.eventBus, a.logger)
	return nil
}

// InitEvents attaches the broker forwarder to the event bus when one is configured
func (a *App) InitEvents() error {
	if a.fwd == nil {
		if !a.config.EventsEnabled() {
			a.logger.Info("Event forwarding disabled")
			return nil
		}
		fwd, err := events.DialAMQPForwarder(a.config.Events, a.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize event forwarding: %w", err)
		}
		a.fwd = fwd
	}

	a.fwd.Attach(a.eventBus)
	a.logger.WithField("exchange", a.config.Events.Exchange).Info("Forwarding lead events to RabbitMQ")
	return nil
}

// InitHandlers registers every route and builds the middleware chain
func (a *App) InitHandlers() error {
	a.mux = http.NewServeMux()

	httpHandler.NewHealthHandler(a.db, a.config.Version, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewLeadHandler(a.leadService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewGroupHandler(a.groupService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewCampaignHandler(a.campaignService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewGroupLeadHandler(a.groupLeadService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewCampaignLeadHandler(a.campaignLeadService, a.logger).RegisterRoutes(a.mux)

	var handler http.Handler = a.mux
	handler = a.gracefulShutdownMiddleware(handler)
	handler = middleware.LoggingMiddleware(a.logger)(handler)
	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
		a.logger.Info("OpenCensus tracing middleware enabled")
	}
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.CORSMiddleware(a.config.CORSOrigin)(handler)

	a.handler = handler
	return nil
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		select {
		case <-a.serverStarted:
		default:
			close(a.serverStarted)
		}
	}
	a.serverStarted = make(chan struct{})
	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := a.server
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}
	return server.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones and releases resources
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources(ctx)
	}

	a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithField("error", err).Warn("HTTP server shutdown did not complete cleanly")
		shutdownErr = err
	} else {
		a.logger.Info("HTTP server shutdown completed")
	}

	requestsDone := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(requestsDone)
	}()
	select {
	case <-requestsDone:
	case <-shutdownCtx.Done():
		a.logger.WithField("active_requests", a.getActiveRequestCount()).Warn("Shutdown timeout reached, forcing shutdown")
	}

	if err := a.cleanupResources(ctx); err != nil {
		a.logger.WithField("error", err).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = err
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}
	return shutdownErr
}

// cleanupResources closes the event forwarder, exporters and database
func (a *App) cleanupResources(ctx context.Context) error {
	var firstErr error

	if a.fwd != nil {
		if err := a.fwd.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing event forwarder")
			firstErr = err
		}
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err).Error("Error flushing telemetry exporters")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if a.db != nil {
		if a.config.Tracing.Enabled {
			if err := ocsql.RecordStats(a.db, 5*time.Second); err != nil {
				a.logger.WithField("error", err).Error("Failed to record final database stats for tracing")
			}
		}

		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing database connection")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns false if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting LeadFlow API")

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitRepositories,
		a.InitServices,
		a.InitEvents,
		a.InitHandlers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

func (a *App) GetConfig() *config.Config {
	return a.config
}

func (a *App) GetLogger() logger.Logger {
	return a.logger
}

func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetHandler returns the mux wrapped in the middleware chain
func (a *App) GetHandler() http.Handler {
	return a.handler
}

func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) GetEventBus() domain.EventBus {
	return a.eventBus
}

func (a *App) GetLeadRepository() domain.LeadRepository {
	return a.leadRepo
}

func (a *App) GetGroupRepository() domain.GroupRepository {
	return a.groupRepo
}

func (a *App) GetCampaignRepository() domain.CampaignRepository {
	return a.campaignRepo
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// GetShutdownContext returns a context cancelled when shutdown begins
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and rejects new ones once shutdown starts
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		atomic.AddInt64(&a.activeRequests, 1)
		a.requestWg.Add(1)
		defer func() {
			atomic.AddInt64(&a.activeRequests, -1)
			a.requestWg.Done()
		}()

		next.ServeHTTP(w, r)
	})
}

var _ AppInterface = (*App)(nil)
