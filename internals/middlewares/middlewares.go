package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware dasar (urutan penting:
// recovery paling luar, lalu CORS, lalu limiter umum).
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up global middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(DailyRateLimiter())
	app.Use(HourlyRateLimiter())
}
