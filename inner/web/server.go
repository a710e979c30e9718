package web

import (
	"time"

	_ "ems/docs"

	"ems/inner/common"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// структура веб-сервера
type Server struct {
	App *fiber.App
	// группа публичного API
	GroupApi fiber.Router
	// группа публичного API первой версии
	GroupApiV1 fiber.Router
	// группа непубличного API
	GroupInternal fiber.Router
}

// функция-конструктор
func NewServer(logger *common.Logger) *Server {

	// создаём новый веб-сервер
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware для восстановления от паники
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Middleware для добавления уникального ID к каждому запросу
	app.Use(requestid.New())

	app.Use(CustomMiddleware(logger))

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:          "/swagger/doc.json",
		DeepLinking:  true,
		DocExpansion: "none",
		Title:        "Employee Records API",
	}))

	groupInternal := app.Group("/internal")

	groupInternal.Use(func(c *fiber.Ctx) error {
		c.Set("X-Internal-API", "true")
		return c.Next()
	})

	// создаём группу "/api"
	groupApi := app.Group("/api")

	// создаём подгруппу "api/v1"
	groupApiV1 := groupApi.Group("/v1")

	groupApiV1.Use(func(c *fiber.Ctx) error {
		c.Set("X-API-Version", "v1")
		return c.Next()
	})

	return &Server{
		App:           app,
		GroupApi:      groupApi,
		GroupApiV1:    groupApiV1,
		GroupInternal: groupInternal,
	}
}

// CustomMiddleware логирует начало и завершение каждого запроса
func CustomMiddleware(logger *common.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if c.Method() == fiber.MethodPost && len(c.Body()) > 0 &&
			c.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON {
			fields = append(fields, common.ParseRequestBody(c.Body())...)
		}
		logger.InfoCtx(c, "Request started", fields...)

		err := c.Next()

		logger.InfoCtx(c, "Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)

		return err
	}
}
