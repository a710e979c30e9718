package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	// стратегии формирования списка сотрудников
	ListStrategyProcedure = "procedure"
	ListStrategyQuery     = "query"

	defaultServerAddress = ":8080"
)

// Общая конфигурация всего приложения
type Config struct {
	DbDriverName   string `validate:"required,oneof=postgres pgx"`
	Dsn            string `validate:"required"`
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	LogLevel       string
	LogDevelopMode bool
	// procedure - хранимая функция в БД, query - запрос собирается в приложении
	ListStrategy  string `validate:"required,oneof=procedure query"`
	ServerAddress string `validate:"required"`
	// применять ли миграции при старте
	DbMigrate bool
}

// Получение конфигурации из .env файла или переменных окружения.
// Паникует, если обязательные параметры не заданы.
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		DbDriverName:   os.Getenv("DB_DRIVER_NAME"),
		Dsn:            os.Getenv("DB_DSN"),
		AppName:        os.Getenv("APP_NAME"),
		AppVersion:     os.Getenv("APP_VERSION"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogDevelopMode: parseBool(os.Getenv("LOG_DEVELOP_MODE")),
		ListStrategy:   getEnv("LIST_STRATEGY", ListStrategyProcedure),
		ServerAddress:  getEnv("SERVER_ADDRESS", defaultServerAddress),
		DbMigrate:      parseBool(os.Getenv("DB_MIGRATE")),
	}
	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Sprintf("config validation error: %v", err))
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
