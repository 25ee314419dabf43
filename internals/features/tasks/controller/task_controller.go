package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/tasks/dto"
	taskModel "schoolku_backend/internals/features/tasks/model"
	"schoolku_backend/internals/features/tasks/service"
	helper "schoolku_backend/internals/helpers"
	authMw "schoolku_backend/internals/middlewares/auth"
)

type TaskController struct {
	DB    *gorm.DB
	Store service.JobStore
}

func NewTaskController(db *gorm.DB, store service.JobStore) *TaskController {
	return &TaskController{DB: db, Store: store}
}

// POST /api/tasks/ — enqueue job + catat record task
func (tc *TaskController) LaunchTask(c *fiber.Ctx) error {
	current, ok := authMw.CurrentUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.LaunchTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	task, err := service.LaunchTask(tc.DB, tc.Store, current.ID, req.Name, req.Description, req.Kwargs)
	if err != nil {
		if errors.Is(err, service.ErrUnknownJob) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown task name")
		}
		log.Println("[ERROR] launch task:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to launch task")
	}
	return helper.JsonCreated(c, "Task launched successfully", task)
}

// GET /api/tasks/ — task berjalan milik user
func (tc *TaskController) GetTasksInProgress(c *fiber.Ctx) error {
	current, ok := authMw.CurrentUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	tasks, err := service.GetTasksInProgress(tc.DB, current.ID)
	if err != nil {
		log.Println("[ERROR] fetch tasks:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tasks")
	}
	return helper.JsonOK(c, "Tasks fetched successfully", tasks)
}

// GET /api/tasks/completed — task selesai milik user
func (tc *TaskController) GetCompletedTasks(c *fiber.Ctx) error {
	current, ok := authMw.CurrentUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	tasks, err := service.GetCompletedTasks(tc.DB, current.ID)
	if err != nil {
		log.Println("[ERROR] fetch completed tasks:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tasks")
	}
	return helper.JsonOK(c, "Tasks fetched successfully", tasks)
}

// GET /api/tasks/:id/progress — progress snapshot sebuah task
func (tc *TaskController) GetTaskProgress(c *fiber.Ctx) error {
	current, ok := authMw.CurrentUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task ID format")
	}

	var task taskModel.TaskModel
	if err := tc.DB.First(&task, "id = ? AND user_id = ?", id, current.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
	}

	return helper.JsonOK(c, "Task progress fetched successfully", fiber.Map{
		"task":     task,
		"progress": service.GetProgress(tc.Store, &task),
	})
}
