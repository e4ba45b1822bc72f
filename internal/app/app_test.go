package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/leadflow/config"
	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/internal/events"
	"github.com/leadflow/leadflow/internal/http/middleware"
	"github.com/leadflow/leadflow/pkg/logger"
	pkgmocks "github.com/leadflow/leadflow/pkg/mocks"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		LogLevel:    "debug",
		CORSOrigin:  "*",
		Version:     config.VERSION,
		Database: config.DatabaseConfig{
			User:     "postgres_test",
			Password: "postgres_test",
			Host:     "localhost",
			Port:     5432,
			DBName:   "leadflow_test",
			SSLMode:  "disable",
		},
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Events: config.EventsConfig{
			Exchange:     "leadflow.events",
			RoutingKeyNS: "leadflow",
		},
	}
}

// initializedApp runs every init step except the database connection
func initializedApp(t *testing.T, opts ...AppOption) (*App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	opts = append([]AppOption{WithMockDB(db), WithLogger(logger.NewTestLogger(nil))}, opts...)
	a := NewApp(createTestConfig(), opts...).(*App)

	require.NoError(t, a.Initialize())
	return a, mock
}

type recordingChannel struct {
	mu     sync.Mutex
	keys   []string
	closed bool
}

func (c *recordingChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return nil
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, key)
	return nil
}

func (c *recordingChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func TestNewApp(t *testing.T) {
	cfg := createTestConfig()
	a := NewApp(cfg)

	assert.Equal(t, cfg, a.GetConfig())
	assert.NotNil(t, a.GetLogger())
	assert.NotNil(t, a.GetMux())
	assert.Nil(t, a.GetDB())
	assert.False(t, a.IsServerCreated())
}

func TestApp_Initialize(t *testing.T) {
	a, _ := initializedApp(t)

	assert.NotNil(t, a.GetLeadRepository())
	assert.NotNil(t, a.GetGroupRepository())
	assert.NotNil(t, a.GetCampaignRepository())
	assert.NotNil(t, a.GetEventBus())
	assert.NotNil(t, a.GetHandler())
	assert.NotNil(t, a.leadService)
	assert.NotNil(t, a.groupLeadService)
	assert.NotNil(t, a.campaignLeadService)
	assert.Nil(t, a.fwd)
}

func TestApp_InitTracingRejectsUnknownExporter(t *testing.T) {
	cfg := createTestConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.TraceExporter = "carrier-pigeon"

	a := NewApp(cfg, WithLogger(logger.NewTestLogger(t)))
	err := a.InitTracing()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize tracing")
}

func TestApp_Routes(t *testing.T) {
	a, mock := initializedApp(t)
	handler := a.GetHandler()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("db check", func(t *testing.T) {
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/db-check", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Database connection successful")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/leads", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid id reaches the lead handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("unknown status on campaign membership is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/campaigns/1/leads/2", strings.NewReader(`{"status":"Sleeping"}`))
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApp_InitEventsWithForwarder(t *testing.T) {
	ch := &recordingChannel{}
	fwd, err := events.NewAMQPForwarder(ch, "leadflow.events", "leadflow", logger.NewTestLogger(nil))
	require.NoError(t, err)

	a, mock := initializedApp(t, WithEventForwarder(fwd))
	require.NotNil(t, a.fwd)

	done := make(chan error, 1)
	a.eventBus.PublishWithAck(context.Background(), domain.EventPayload{Type: domain.EventLeadCreated, LeadID: 1}, func(err error) {
		done <- err
	})
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not forwarded")
	}

	ch.mu.Lock()
	assert.Equal(t, []string{"leadflow.lead.created"}, ch.keys)
	ch.mu.Unlock()

	mock.ExpectClose()
	require.NoError(t, a.Shutdown(context.Background()))
	assert.True(t, ch.closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).Times(0)

	a := NewApp(&config.Config{}, WithLogger(mockLogger), WithMockDB(mockDB))

	assert.NoError(t, a.Shutdown(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppStart(t *testing.T) {
	cfg := createTestConfig()
	cfg.Server.Port = 18080 + (time.Now().Nanosecond() % 1000)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	a := NewApp(cfg, WithLogger(logger.NewTestLogger(nil)), WithMockDB(db))
	require.NoError(t, a.Initialize())
	a.SetShutdownTimeout(2 * time.Second)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Start()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.True(t, a.WaitForServerStart(ctx), "server should have started within timeout")
	assert.True(t, a.IsServerCreated())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	assert.NoError(t, a.Shutdown(shutdownCtx))

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			t.Fatalf("server error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server to stop")
	}
}

func TestWaitForServerStartTimesOut(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.False(t, a.WaitForServerStart(ctx))
}

func TestGracefulShutdownMethods(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t)))

	a.SetShutdownTimeout(90 * time.Second)
	assert.Equal(t, 90*time.Second, a.(*App).shutdownTimeout)
	assert.Equal(t, int64(0), a.GetActiveRequestCount())

	shutdownCtx := a.GetShutdownContext()
	select {
	case <-shutdownCtx.Done():
		t.Fatal("shutdown context should not be cancelled initially")
	default:
	}

	require.NoError(t, a.Shutdown(context.Background()))

	select {
	case <-shutdownCtx.Done():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("shutdown context should be cancelled after shutdown")
	}
}

func TestGracefulShutdownMiddleware(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewTestLogger(t))).(*App)

	inFlight := make(chan int64, 1)
	wrapped := a.gracefulShutdownMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight <- a.GetActiveRequestCount()
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), <-inFlight)
	assert.Equal(t, int64(0), a.GetActiveRequestCount())

	a.shutdownCancel()
	assert.True(t, a.isShuttingDown())

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is shutting down")
}
