package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/configs"
	authmw "mysteryshopper_backend/internals/middlewares/auth"
	"mysteryshopper_backend/internals/route/details"
)

// SetupRoutes mendaftarkan semua route aplikasi.
// /api/auth publik; sisanya di belakang AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startedAt := time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"uptime": time.Since(startedAt).String(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startedAt).String(),
		})
	})

	// file upload statis (media hasil survey)
	app.Static("/uploads", configs.UploadRoot+"/uploads")

	api := app.Group("/api")

	details.AuthRoutes(api, db)

	protected := api.Group("", authmw.AuthMiddleware())
	details.UserRoutes(protected, db)
	details.TenantRoutes(protected, db)
	details.SurveyRoutes(protected, db)
	details.ResponseRoutes(protected, db)
}
