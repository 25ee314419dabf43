package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolku_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	grp := api.Group("/users")
	grp.Get("/", ctrl.GetUsers)
	grp.Get("/profile", ctrl.GetProfile)
	grp.Get("/role/:role", ctrl.GetUsersByRole)
	grp.Get("/:id", ctrl.GetUser)
	grp.Put("/:id", ctrl.UpdateUser)
	grp.Delete("/:id", ctrl.DeleteUser)
}
