package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"mysteryshopper_backend/internals/configs"
	database "mysteryshopper_backend/internals/databases"
	"mysteryshopper_backend/internals/middlewares"
	"mysteryshopper_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	database.WarmUpQueries()

	app := fiber.New(fiber.Config{
		AppName:     "MysteryShopper Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		// upload media survey (foto/video) bisa besar
		BodyLimit: 200 * 1024 * 1024,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	route.SetupRoutes(app, database.DB)

	// graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("⏳ Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("[ERROR] shutdown: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "3000")
	log.Printf("[INFO] Server berjalan di port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server gagal start: %v", err)
	}

	log.Println("✅ Server berhenti dengan rapi.")
}
