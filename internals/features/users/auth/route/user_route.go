// file: internals/features/users/auth/route/user_route.go
package route

import (
	controller "surveyku_backend/internals/features/users/auth/controller"
	rateLimiter "surveyku_backend/internals/middlewares"
	authMiddleware "surveyku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// 🔒 Protected
	baseAuth.Get("/me", authMiddleware.AuthMiddleware(db), authController.Me)
}
