package common

import (
	"encoding/json"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger обёртка над zap с методами, учитывающими requestId
type Logger struct {
	*zap.Logger
}

// NewLogger функция-конструктор логгера
func NewLogger(cfg Config) *Logger {
	var zapEncoderCfg = zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		FunctionKey:      zapcore.OmitKey,
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000000"),
		EncodeDuration:   zapcore.MillisDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: "  ",
	}
	var zapCfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLogLevel(cfg.LogLevel)),
		Development: cfg.LogDevelopMode,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         logEncoding(cfg.LogDevelopMode),
		EncoderConfig:    zapEncoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
	var logger = zap.Must(zapCfg.Build())
	logger.Info("logger construction succeeded",
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.AppVersion))
	return WrapLogger(logger)
}

// WrapLogger оборачивает готовый zap-логгер (например, zaptest в тестах)
func WrapLogger(logger *zap.Logger) *Logger {
	var created = &Logger{logger}
	created.setNewFiberZapLogger()
	return created
}

// setNewFiberZapLogger устанавливает логгер для fiber
func (l *Logger) setNewFiberZapLogger() {
	var fiberzapLogger = fiberzap.NewLogger(fiberzap.LoggerConfig{
		SetLogger: l.Logger,
	})
	log.SetLogger(fiberzapLogger)
}

// ParseRequestBody достаёт из JSON тела запроса поля сотрудника для логирования
func ParseRequestBody(bodyData []byte) []zap.Field {
	var requestData map[string]any
	if err := json.Unmarshal(bodyData, &requestData); err != nil {
		return []zap.Field{zap.String("body", string(bodyData))}
	}

	var fields []zap.Field
	if id, ok := requestData["id"].(float64); ok {
		fields = append(fields, zap.Int64("id", int64(id)))
	}
	if name, ok := requestData["name"].(string); ok {
		fields = append(fields, zap.String("name", name))
	}
	if email, ok := requestData["email"].(string); ok {
		fields = append(fields, zap.String("email", email))
	}
	if phone, ok := requestData["phone_number"].(string); ok {
		fields = append(fields, zap.String("phone_number", phone))
	}
	return fields
}

// в режиме разработки пишем читаемый текст, иначе JSON
func logEncoding(developMode bool) string {
	if developMode {
		return "console"
	}
	return "json"
}

// parseLogLevel парсит уровень логирования из строки в zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug", "DEBUG":
		return zapcore.DebugLevel
	case "info", "INFO":
		return zapcore.InfoLevel
	case "warn", "WARN":
		return zapcore.WarnLevel
	case "error", "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// getRequestID извлекает requestId из контекста fiber
func (l *Logger) getRequestID(ctx *fiber.Ctx) string {
	requestID := ctx.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		if reqID := ctx.Locals("requestid"); reqID != nil {
			if id, ok := reqID.(string); ok {
				requestID = id
			}
		}
	}
	return requestID
}

func (l *Logger) withRequestID(ctx *fiber.Ctx, fields []zap.Field) []zap.Field {
	if requestID := l.getRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}

// InfoCtx логирует сообщение уровня Info с requestId из контекста
func (l *Logger) InfoCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Info(msg, l.withRequestID(ctx, fields)...)
}

// DebugCtx логирует сообщение уровня Debug с requestId из контекста
func (l *Logger) DebugCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Debug(msg, l.withRequestID(ctx, fields)...)
}

// WarnCtx логирует сообщение уровня Warn с requestId из контекста
func (l *Logger) WarnCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Warn(msg, l.withRequestID(ctx, fields)...)
}

// ErrorCtx логирует сообщение уровня Error с requestId из контекста
func (l *Logger) ErrorCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Error(msg, l.withRequestID(ctx, fields)...)
}
