package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	taskModel "schoolku_backend/internals/features/tasks/model"
	"schoolku_backend/internals/features/tasks/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/testutil"
)

func newTaskApp(t *testing.T) (*fiber.App, *gorm.DB, *service.InProcessJobStore, *userModel.UserModel) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp()
	store := service.NewInProcessJobStore()
	owner := testutil.CreateUser(t, db, constants.RoleAdmin)

	ctrl := NewTaskController(db, store)
	app.Post("/api/tasks/", testutil.WithUser(owner), ctrl.LaunchTask)
	app.Get("/api/tasks/", testutil.WithUser(owner), ctrl.GetTasksInProgress)
	app.Get("/api/tasks/completed", testutil.WithUser(owner), ctrl.GetCompletedTasks)
	app.Get("/api/tasks/:id/progress", testutil.WithUser(owner), ctrl.GetTaskProgress)
	return app, db, store, owner
}

func TestLaunchTask_UnknownNameIsBadRequest(t *testing.T) {
	app, _, _, _ := newTaskApp(t)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/tasks/", fiber.Map{
		"name": "no-such-job",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLaunchTask_CreatesRecord(t *testing.T) {
	app, db, store, owner := newTaskApp(t)

	release := make(chan struct{})
	store.Register("export_reports", func(ctx context.Context, report func(int), kwargs map[string]any) error {
		<-release
		return nil
	})
	defer close(release)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/tasks/", fiber.Map{
		"name":        "export_reports",
		"description": "Export all reports",
		"kwargs":      fiber.Map{"term": "first"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var task taskModel.TaskModel
	require.NoError(t, db.First(&task, "user_id = ?", owner.ID).Error)
	assert.Equal(t, "export_reports", task.Name)
	assert.False(t, task.Complete)

	// task berjalan muncul di daftar in-progress
	resp, err = app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/tasks/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []taskModel.TaskModel `json:"data"`
	}
	testutil.DecodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
}

func TestGetTaskProgress_OwnerScoped(t *testing.T) {
	app, db, store, _ := newTaskApp(t)
	other := testutil.CreateUser(t, db, constants.RoleAdmin)

	release := make(chan struct{})
	store.Register("slow", func(ctx context.Context, report func(int), kwargs map[string]any) error {
		report(42)
		<-release
		return nil
	})
	defer close(release)

	task, err := service.LaunchTask(db, store, other.ID, "slow", "", nil)
	require.NoError(t, err)

	// task milik user lain tidak kelihatan
	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/tasks/"+task.ID.String()+"/progress", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetTaskProgress_MissingJobReportsFinished(t *testing.T) {
	app, db, _, owner := newTaskApp(t)

	// record task ada tapi jobnya sudah hilang dari store
	task := taskModel.TaskModel{TaskID: "11111111-2222-3333-4444-555555555555", Name: "gone", UserID: owner.ID}
	require.NoError(t, db.Create(&task).Error)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/tasks/"+task.ID.String()+"/progress", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Progress int `json:"progress"`
		} `json:"data"`
	}
	testutil.DecodeBody(t, resp, &body)
	assert.Equal(t, 100, body.Data.Progress)
}
