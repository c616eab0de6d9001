package api

import (
	"errors"

	"company-ai/docs"
	"company-ai/internal/api/handlers"
	"company-ai/pkg/config"
	"company-ai/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const ChatCompletionsPath = "/v1/chat/completions"

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "company-ai",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(appLogger),
	})

	// Middleware
	app.Use(middleware.RequestLogger(appLogger))
	app.Use(recover.New())
	app.Use(middleware.CORS())

	if cfg.SwaggerEnabled {
		_ = docs.SwaggerInfo
		app.Get("/swagger/*", swagger.HandlerDefault)
		appLogger.Info("Swagger UI enabled", zap.String("path", "/swagger/index.html"))
	}

	app.Post(ChatCompletionsPath, chatHandler.ChatCompletions)

	// Everything else, including other methods on the completions path.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

// errorHandler renders errors as plain text. fiber errors keep their status;
// anything else is an internal fault and its message is echoed back.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		var e *fiber.Error
		if errors.As(err, &e) {
			if e.Code == fiber.StatusNotFound || e.Code == fiber.StatusMethodNotAllowed {
				return c.Status(fiber.StatusNotFound).SendString("Endpoint not found")
			}
			return c.Status(e.Code).SendString(e.Message)
		}

		logger.Error("Error processing request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal server error: " + err.Error())
	}
}
