package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/subjects/model"
	"schoolku_backend/internals/testutil"
)

func newSubjectApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp()

	ctrl := NewSubjectController(db)
	app.Post("/api/subjects/", ctrl.CreateSubject)
	app.Get("/api/subjects/", ctrl.GetSubjects)
	app.Get("/api/subjects/:id", ctrl.GetSubject)
	app.Put("/api/subjects/:id", ctrl.UpdateSubject)
	app.Delete("/api/subjects/:id", ctrl.DeleteSubject)
	return app, db
}

func TestCreateSubject_DuplicateName(t *testing.T) {
	app, _ := newSubjectApp(t)

	body := fiber.Map{"name": "Chemistry"}
	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/subjects/", body))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/subjects/", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetSubjects_EmptyIsOK(t *testing.T) {
	app, _ := newSubjectApp(t)

	// daftar subject kosong tetap 200 + array kosong
	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/subjects/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []model.SubjectModel `json:"data"`
	}
	testutil.DecodeBody(t, resp, &body)
	assert.Empty(t, body.Data)
}

func TestUpdateSubject_LegacyStatus(t *testing.T) {
	app, db := newSubjectApp(t)

	subj := model.SubjectModel{Name: "Physics"}
	require.NoError(t, db.Create(&subj).Error)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, "/api/subjects/"+subj.ID.String(), fiber.Map{
		"description": "Mechanics and waves",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got model.SubjectModel
	require.NoError(t, db.First(&got, "id = ?", subj.ID).Error)
	assert.Equal(t, "Physics", got.Name)
	assert.Equal(t, "Mechanics and waves", got.Description)
}

func TestDeleteSubject_CascadesScores(t *testing.T) {
	app, db := newSubjectApp(t)

	subj := model.SubjectModel{Name: "Geography"}
	require.NoError(t, db.Create(&subj).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO users_subjects (user_id, subject_id) VALUES (?, ?)",
		testutil.CreateUser(t, db, "student").ID, subj.ID,
	).Error)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodDelete, "/api/subjects/"+subj.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var joins, subjects int64
	require.NoError(t, db.Table("users_subjects").Where("subject_id = ?", subj.ID).Count(&joins).Error)
	require.NoError(t, db.Model(&model.SubjectModel{}).Where("id = ?", subj.ID).Count(&subjects).Error)
	assert.Zero(t, joins)
	assert.Zero(t, subjects)
}
