package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"DB_DRIVER_NAME", "DB_DSN", "APP_NAME", "APP_VERSION", "LOG_LEVEL",
	"LOG_DEVELOP_MODE", "LIST_STRATEGY", "SERVER_ADDRESS", "DB_MIGRATE",
}

// clearConfigEnv очищает переменные окружения и восстанавливает их после теста
func clearConfigEnv(t *testing.T) {
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetConfig_NoEnvFile(t *testing.T) {
	clearConfigEnv(t)

	// Ожидаем панику из-за валидации
	message := panicMessage(t, func() {
		GetConfig(filepath.Join(t.TempDir(), ".env_not_exists"))
	})
	assert.True(t, strings.HasPrefix(message, "config validation error: "))
	assert.Contains(t, message, "'DbDriverName' failed on the 'required' tag")
	assert.Contains(t, message, "'AppVersion' failed on the 'required' tag")
	assert.NotContains(t, message, "ListStrategy")
}

func panicMessage(t *testing.T, fn func()) (message string) {
	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "Должна быть паника из-за отсутствия обязательных полей")
		message, _ = recovered.(string)
	}()
	fn()
	return ""
}

func TestGetConfig_FromEnvFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeEnvFile(t, "DB_DRIVER_NAME=pgx\n"+
		"DB_DSN=\"host=localhost port=5432 dbname=ems sslmode=disable\"\n"+
		"APP_NAME=ems\n"+
		"APP_VERSION=0.1.0\n"+
		"LOG_LEVEL=DEBUG\n"+
		"LOG_DEVELOP_MODE=true\n"+
		"LIST_STRATEGY=query\n"+
		"DB_MIGRATE=true\n")

	cfg := GetConfig(path)

	assert.Equal(t, "pgx", cfg.DbDriverName)
	assert.Equal(t, "host=localhost port=5432 dbname=ems sslmode=disable", cfg.Dsn)
	assert.Equal(t, "ems", cfg.AppName)
	assert.Equal(t, "0.1.0", cfg.AppVersion)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopMode)
	assert.Equal(t, ListStrategyQuery, cfg.ListStrategy)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.True(t, cfg.DbMigrate)
}

func TestGetConfig_EnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeEnvFile(t, "DB_DRIVER_NAME=postgres\nDB_DSN=file-dsn\nAPP_NAME=ems\nAPP_VERSION=0.1.0\n")
	t.Setenv("DB_DSN", "env-dsn")

	cfg := GetConfig(path)

	// godotenv не перезаписывает уже заданные переменные
	assert.Equal(t, "env-dsn", cfg.Dsn)
	assert.Equal(t, ListStrategyProcedure, cfg.ListStrategy)
	assert.False(t, cfg.DbMigrate)
}

func TestGetConfig_UnknownListStrategy(t *testing.T) {
	clearConfigEnv(t)
	path := writeEnvFile(t, "DB_DRIVER_NAME=postgres\nDB_DSN=dsn\nAPP_NAME=ems\nAPP_VERSION=0.1.0\nLIST_STRATEGY=orm\n")

	assert.PanicsWithValue(t,
		"config validation error: Key: 'Config.ListStrategy' Error:Field validation for 'ListStrategy' failed on the 'oneof' tag",
		func() { GetConfig(path) })
}

func TestGetConfig_UnknownDriver(t *testing.T) {
	clearConfigEnv(t)
	path := writeEnvFile(t, "DB_DRIVER_NAME=mysql\nDB_DSN=dsn\nAPP_NAME=ems\nAPP_VERSION=0.1.0\n")

	assert.Panics(t, func() { GetConfig(path) })
}
