package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMw "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes — register/login publik, logout butuh token.
// Semua route auth dibatasi 1 request per menit per IP.
func AuthRoutes(api fiber.Router, db *gorm.DB, resolve authMw.UserResolver) {
	ctrl := authController.NewAuthController(db)

	grp := api.Group("/auth", middlewares.AuthRateLimiter())
	grp.Post("/register", ctrl.Register)
	grp.Post("/login", ctrl.Login)
	grp.Delete("/logout", authMw.AuthMiddleware(db, resolve), ctrl.Logout)
}
