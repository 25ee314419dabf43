package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/school/schools/controller"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	grp := api.Group("/schools")
	grp.Post("/", ctrl.CreateSchool)
	grp.Get("/", ctrl.GetSchools)
	grp.Get("/:id", ctrl.GetSchool)
	grp.Put("/:id", ctrl.UpdateSchool)
	grp.Delete("/:id", ctrl.DeleteSchool)
	grp.Put("/:id/admin/:user_id", ctrl.AssignOwner)
}
