package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/reports/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/testutil"
)

func newReportApp(t *testing.T) (*fiber.App, *gorm.DB, *userModel.UserModel) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp()

	generator := testutil.CreateUser(t, db, constants.RoleTeacher)
	ctrl := NewReportController(db)
	app.Post("/api/reports/", testutil.WithUser(generator), ctrl.CreateReport)
	app.Get("/api/reports/", ctrl.GetReports)
	app.Get("/api/reports/:id", ctrl.GetReport)
	app.Put("/api/reports/:id", ctrl.UpdateReport)
	app.Delete("/api/reports/:id", ctrl.DeleteReport)
	return app, db, generator
}

func TestCreateReport_SetsGeneratorAndStudents(t *testing.T) {
	app, db, generator := newReportApp(t)
	student := testutil.CreateUser(t, db, constants.RoleStudent)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/reports/", fiber.Map{
		"url":         "/reports/2024-first.pdf",
		"term":        "first",
		"session":     2024,
		"comment":     "End of term report",
		"student_ids": []uuid.UUID{student.ID},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got model.ReportModel
	require.NoError(t, db.First(&got, "url = ?", "/reports/2024-first.pdf").Error)
	require.NotNil(t, got.GeneratorID)
	assert.Equal(t, generator.ID, *got.GeneratorID)

	var joins int64
	require.NoError(t, db.Table("student_reports").
		Where("report_id = ? AND user_id = ?", got.ID, student.ID).Count(&joins).Error)
	assert.Equal(t, int64(1), joins)
}

func TestCreateReport_UnknownStudentRejected(t *testing.T) {
	app, _, _ := newReportApp(t)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/reports/", fiber.Map{
		"url":         "/reports/x.pdf",
		"term":        "first",
		"session":     2024,
		"student_ids": []uuid.UUID{uuid.New()},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetReports_EmptyIsOK(t *testing.T) {
	app, _, _ := newReportApp(t)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/reports/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateReport_Partial(t *testing.T) {
	app, db, _ := newReportApp(t)

	report := model.ReportModel{URL: "/reports/a.pdf", Term: "first", Session: 2024}
	require.NoError(t, db.Create(&report).Error)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, "/api/reports/"+report.ID.String(), fiber.Map{
		"comment": "Reviewed",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.ReportModel
	require.NoError(t, db.First(&got, "id = ?", report.ID).Error)
	assert.Equal(t, "Reviewed", got.Comment)
	assert.Equal(t, "first", got.Term)
	assert.Equal(t, 2024, got.Session)
}

func TestDeleteReport_RemovesJoinRows(t *testing.T) {
	app, db, _ := newReportApp(t)
	student := testutil.CreateUser(t, db, constants.RoleStudent)

	report := model.ReportModel{URL: "/reports/b.pdf", Term: "third", Session: 2023}
	require.NoError(t, db.Create(&report).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO student_reports (report_id, user_id) VALUES (?, ?)", report.ID, student.ID,
	).Error)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodDelete, "/api/reports/"+report.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var joins, reports int64
	require.NoError(t, db.Table("student_reports").Where("report_id = ?", report.ID).Count(&joins).Error)
	require.NoError(t, db.Model(&model.ReportModel{}).Where("id = ?", report.ID).Count(&reports).Error)
	assert.Zero(t, joins)
	assert.Zero(t, reports)
}
