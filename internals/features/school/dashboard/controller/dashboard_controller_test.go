package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
	classModel "schoolku_backend/internals/features/school/classes/model"
	reportModel "schoolku_backend/internals/features/school/reports/model"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/testutil"
)

func TestGetDashboard_SummaryCounts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp()

	owner := testutil.CreateUser(t, db, constants.RoleAdmin)
	ctrl := NewDashboardController(db)
	app.Get("/api/dashboard", testutil.WithUser(owner), ctrl.GetDashboard)

	school := schoolModel.SchoolModel{
		Name: "Dashboard College", Address: "7 Summary Close",
		Phone: "+2348055556666", Email: "dash@college.edu.ng",
		OwnerID: &owner.ID,
	}
	require.NoError(t, db.Create(&school).Error)

	students := []*userModel.UserModel{
		testutil.CreateUser(t, db, constants.RoleStudent),
		testutil.CreateUser(t, db, constants.RoleStudent),
		testutil.CreateUser(t, db, constants.RoleStudent),
	}
	teachers := []*userModel.UserModel{
		testutil.CreateUser(t, db, constants.RoleTeacher),
		testutil.CreateUser(t, db, constants.RoleTeacher),
	}
	subjects := []subjectModel.SubjectModel{{Name: "Mathematics"}, {Name: "English Language"}}
	class := classModel.ClassModel{Name: "JSS Three"}
	require.NoError(t, db.Create(&subjects).Error)
	require.NoError(t, db.Create(&class).Error)

	for _, s := range students {
		require.NoError(t, db.Exec(
			"INSERT INTO school_students (school_id, student_id) VALUES (?, ?)", school.ID, s.ID,
		).Error)
	}
	for _, tc := range teachers {
		require.NoError(t, db.Exec(
			"INSERT INTO school_teachers (school_id, teacher_id) VALUES (?, ?)", school.ID, tc.ID,
		).Error)
	}
	for _, sub := range subjects {
		require.NoError(t, db.Exec(
			"INSERT INTO schools_subjects (school_id, subject_id) VALUES (?, ?)", school.ID, sub.ID,
		).Error)
	}
	require.NoError(t, db.Exec(
		"INSERT INTO school_classes (school_id, class_id) VALUES (?, ?)", school.ID, class.ID,
	).Error)

	// satu siswa punya report; dua report utk siswa yang sama tetap dihitung 1
	report := reportModel.ReportModel{URL: "/reports/r1.pdf", Term: "first", Session: 2024, GeneratorID: &owner.ID}
	report2 := reportModel.ReportModel{URL: "/reports/r2.pdf", Term: "second", Session: 2024, GeneratorID: &owner.ID}
	require.NoError(t, db.Create(&report).Error)
	require.NoError(t, db.Create(&report2).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO student_reports (report_id, user_id) VALUES (?, ?)", report.ID, students[0].ID,
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO student_reports (report_id, user_id) VALUES (?, ?)", report2.ID, students[0].ID,
	).Error)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			SchoolSummary struct {
				StudentCount int `json:"student_count"`
				TeacherCount int `json:"teacher_count"`
				ClassCount   int `json:"class_count"`
				SubjectCount int `json:"subject_count"`
				ReportsCount int `json:"reports_count"`
			} `json:"school_summary"`
		} `json:"data"`
	}
	testutil.DecodeBody(t, resp, &body)

	sum := body.Data.SchoolSummary
	assert.Equal(t, 3, sum.StudentCount)
	assert.Equal(t, 2, sum.TeacherCount)
	assert.Equal(t, 1, sum.ClassCount)
	assert.Equal(t, 2, sum.SubjectCount)
	assert.Equal(t, 1, sum.ReportsCount)
}

func TestGetDashboard_NoSchoolIsNotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp()

	owner := testutil.CreateUser(t, db, constants.RoleAdmin)
	ctrl := NewDashboardController(db)
	app.Get("/api/dashboard", testutil.WithUser(owner), ctrl.GetDashboard)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
