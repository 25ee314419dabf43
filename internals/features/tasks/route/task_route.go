package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "schoolku_backend/internals/features/tasks/controller"
	taskService "schoolku_backend/internals/features/tasks/service"
)

func TaskRoutes(api fiber.Router, db *gorm.DB, store taskService.JobStore) {
	ctrl := taskController.NewTaskController(db, store)

	grp := api.Group("/tasks")
	grp.Post("/", ctrl.LaunchTask)
	grp.Get("/", ctrl.GetTasksInProgress)
	grp.Get("/completed", ctrl.GetCompletedTasks)
	grp.Get("/:id/progress", ctrl.GetTaskProgress)
}
