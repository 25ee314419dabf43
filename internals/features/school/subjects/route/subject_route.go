package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schoolku_backend/internals/features/school/subjects/controller"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	grp := api.Group("/subjects")
	grp.Post("/", ctrl.CreateSubject)
	grp.Get("/", ctrl.GetSubjects)
	grp.Get("/:id", ctrl.GetSubject)
	grp.Put("/:id", ctrl.UpdateSubject)
	grp.Delete("/:id", ctrl.DeleteSubject)
}
