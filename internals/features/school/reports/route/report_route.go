package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "schoolku_backend/internals/features/school/reports/controller"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	grp := api.Group("/reports")
	grp.Post("/", ctrl.CreateReport)
	grp.Get("/", ctrl.GetReports)
	grp.Get("/:id", ctrl.GetReport)
	grp.Put("/:id", ctrl.UpdateReport)
	grp.Delete("/:id", ctrl.DeleteReport)
}
