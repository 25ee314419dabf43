package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolku_backend/internals/features/school/classes/controller"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	grp := api.Group("/classes")
	grp.Post("/", ctrl.CreateClass)
	grp.Get("/", ctrl.GetClasses)
	grp.Get("/:id", ctrl.GetClass)
	grp.Put("/:id", ctrl.UpdateClass)
	grp.Delete("/:id", ctrl.DeleteClass)
}
