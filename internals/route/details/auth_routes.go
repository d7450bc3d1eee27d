package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "mysteryshopper_backend/internals/features/users/auth/controller"
	"mysteryshopper_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (tanpa token), dengan rate limiter ketat.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
