package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/dashboard/dto"
	schoolDTO "schoolku_backend/internals/features/school/schools/dto"
	schoolModel "schoolku_backend/internals/features/school/schools/model"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	helper "schoolku_backend/internals/helpers"
	authMw "schoolku_backend/internals/middlewares/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard — satu-satunya endpoint yang mengkomposisi
// beberapa entity: sekolah milik user + semua koleksinya + ringkasan.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	current, ok := authMw.CurrentUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var school schoolModel.SchoolModel
	err := dc.DB.
		Preload("Owner").
		Preload("Students").
		Preload("Teachers").
		Preload("Subjects").
		Preload("Classes").
		First(&school, "owner_id = ?", current.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		log.Println("[ERROR] dashboard load:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to compose dashboard")
	}

	// hitung siswa yang punya minimal satu report
	reportsCount, err := dc.countStudentsWithReports(&school)
	if err != nil {
		log.Println("[ERROR] dashboard reports count:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to compose dashboard")
	}

	resp := dto.DashboardResponse{
		School:   schoolDTO.ToSchoolResponse(&school),
		Students: userDTO.ToUserResponses(school.Students),
		Teachers: userDTO.ToUserResponses(school.Teachers),
		Subjects: school.Subjects,
		Classes:  school.Classes,
		SchoolSummary: dto.SchoolSummary{
			StudentCount: len(school.Students),
			TeacherCount: len(school.Teachers),
			ClassCount:   len(school.Classes),
			SubjectCount: len(school.Subjects),
			ReportsCount: reportsCount,
		},
	}
	if school.Owner != nil {
		owner := userDTO.ToUserResponse(school.Owner)
		resp.Owner = &owner
	}

	return helper.JsonOK(c, "Dashboard fetched successfully", resp)
}

func (dc *DashboardController) countStudentsWithReports(school *schoolModel.SchoolModel) (int, error) {
	if len(school.Students) == 0 {
		return 0, nil
	}
	ids := make([]uuid.UUID, 0, len(school.Students))
	for i := range school.Students {
		ids = append(ids, school.Students[i].ID)
	}
	var n int64
	err := dc.DB.Table("student_reports").
		Where("user_id IN ?", ids).
		Distinct("user_id").
		Count(&n).Error
	return int(n), err
}
