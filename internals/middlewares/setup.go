package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"surveyku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware lintas fitur: recovery paling
// luar, lalu CORS, logger, dan rate limit global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
