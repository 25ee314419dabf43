package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "schoolku_backend/internals/features/school/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)
	api.Get("/dashboard", ctrl.GetDashboard)
}
