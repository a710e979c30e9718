package info

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"ems/inner/common"
	"ems/inner/web"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testCfg = common.Config{
	DbDriverName: "postgres",
	Dsn:          "test-dsn",
	AppName:      "test-app",
	AppVersion:   "1.0.0",
	ListStrategy: common.ListStrategyQuery,
}

// Создаем тестовый сервер
func setupTestServer() (*fiber.App, *web.Server) {
	app := fiber.New()
	server := &web.Server{
		App:           app,
		GroupInternal: app.Group("/internal"),
	}
	return app, server
}

func decodeHealth(t *testing.T, body io.Reader) HealthResponse {
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	var healthResponse HealthResponse
	require.NoError(t, json.Unmarshal(data, &healthResponse))
	return healthResponse
}

func TestController_GetInfo_Success(t *testing.T) {
	app, server := setupTestServer()
	logger := common.WrapLogger(zaptest.NewLogger(t))

	controller := NewController(server, testCfg, nil, logger)
	controller.RegisterRoutes()

	resp, err := app.Test(httptest.NewRequest("GET", "/internal/info", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var infoResponse InfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infoResponse))
	assert.Equal(t, "test-app", infoResponse.Name)
	assert.Equal(t, "1.0.0", infoResponse.Version)
	assert.Equal(t, common.ListStrategyQuery, infoResponse.ListStrategy)
}

func TestController_GetHealth_WithHealthyDB(t *testing.T) {
	app, server := setupTestServer()
	logger := common.WrapLogger(zaptest.NewLogger(t))

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectPing()

	controller := NewController(server, testCfg, sqlx.NewDb(db, "postgres"), logger)
	controller.RegisterRoutes()

	resp, err := app.Test(httptest.NewRequest("GET", "/internal/health", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	health := decodeHealth(t, resp.Body)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "OK", health.Database)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestController_GetHealth_WithUnhealthyDB(t *testing.T) {
	app, server := setupTestServer()
	logger := common.WrapLogger(zaptest.NewLogger(t))

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectPing().WillReturnError(errors.New("database not available"))

	controller := NewController(server, testCfg, sqlx.NewDb(db, "postgres"), logger)
	controller.RegisterRoutes()

	resp, err := app.Test(httptest.NewRequest("GET", "/internal/health", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	health := decodeHealth(t, resp.Body)
	assert.Equal(t, "ERROR", health.Status)
	assert.Equal(t, "ERROR", health.Database)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestController_GetHealth_WithNilDB(t *testing.T) {
	app, server := setupTestServer()
	logger := common.WrapLogger(zaptest.NewLogger(t))

	controller := NewController(server, testCfg, nil, logger)
	controller.RegisterRoutes()

	resp, err := app.Test(httptest.NewRequest("GET", "/internal/health", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	health := decodeHealth(t, resp.Body)
	assert.Equal(t, "ERROR", health.Status)
	assert.Equal(t, "NOT_CONNECTED", health.Database)
}
