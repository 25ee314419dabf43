package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/reports/dto"
	"schoolku_backend/internals/features/school/reports/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	authMw "schoolku_backend/internals/middlewares/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// POST /api/reports/ — buat report; generator = user dari token,
// siswa terkait diisi dari student_ids.
func (rc *ReportController) CreateReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	report := req.ToModel()
	if current, ok := authMw.CurrentUser(c); ok {
		report.GeneratorID = &current.ID
	}

	if len(req.StudentIDs) > 0 {
		var students []userModel.UserModel
		if err := rc.DB.Find(&students, "id IN ?", req.StudentIDs).Error; err != nil {
			log.Println("[ERROR] fetch report students:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create report")
		}
		if len(students) != len(req.StudentIDs) {
			return helper.JsonError(c, fiber.StatusBadRequest, "One or more students not found")
		}
		report.Students = students
	}

	if err := rc.DB.Create(report).Error; err != nil {
		log.Println("[ERROR] create report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create report")
	}
	return helper.JsonCreated(c, "Report created successfully", report)
}

// GET /api/reports/
func (rc *ReportController) GetReports(c *fiber.Ctx) error {
	var reports []model.ReportModel
	if err := rc.DB.Find(&reports).Error; err != nil {
		log.Println("[ERROR] fetch reports:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve reports")
	}
	return helper.JsonOK(c, "Reports fetched successfully", reports)
}

// GET /api/reports/:id
func (rc *ReportController) GetReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID format")
	}

	var report model.ReportModel
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No report found")
	}
	return helper.JsonOK(c, "Report fetched successfully", report)
}

// PUT /api/reports/:id — partial update
func (rc *ReportController) UpdateReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID format")
	}

	var report model.ReportModel
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	req.ApplyToModel(&report)

	if err := rc.DB.Save(&report).Error; err != nil {
		log.Println("[ERROR] update report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update report")
	}
	return helper.JsonUpdated(c, "Report successfully updated", report)
}

// DELETE /api/reports/:id — cascade baris student_reports
func (rc *ReportController) DeleteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report ID format")
	}

	var report model.ReportModel
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM student_reports WHERE report_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ReportModel{}, "id = ?", id).Error
	})
	if err != nil {
		log.Println("[ERROR] delete report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}
	return helper.JsonDeleted(c, "Report deleted successfully", nil)
}
