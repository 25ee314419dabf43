package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/schools/dto"
	"schoolku_backend/internals/features/school/schools/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// POST /api/schools/
func (sc *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	school := req.ToModel()
	if err := sc.DB.Create(school).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "School phone or email already in use")
		}
		log.Println("[ERROR] create school:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}
	return helper.JsonCreated(c, "School created successfully", dto.ToSchoolResponse(school))
}

// GET /api/schools/ — daftar kosong tetap 200 (tanpa cek empty,
// berbeda dgn users/classes)
func (sc *SchoolController) GetSchools(c *fiber.Ctx) error {
	var schools []model.SchoolModel
	if err := sc.DB.Find(&schools).Error; err != nil {
		log.Println("[ERROR] fetch schools:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve schools")
	}
	return helper.JsonOK(c, "Schools fetched successfully", dto.ToSchoolResponses(schools))
}

// GET /api/schools/:id
func (sc *SchoolController) GetSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID format")
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}
	return helper.JsonOK(c, "School fetched successfully", dto.ToSchoolResponse(&school))
}

// PUT /api/schools/:id — partial update
func (sc *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID format")
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	req.ApplyToModel(&school)

	if err := sc.DB.Save(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "School phone or email already in use")
		}
		log.Println("[ERROR] update school:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update school")
	}
	return helper.JsonUpdated(c, "School updated successfully", dto.ToSchoolResponse(&school))
}

// DELETE /api/schools/:id — hapus sekolah + baris relasinya
func (sc *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID format")
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM school_students WHERE school_id = ?",
			"DELETE FROM school_teachers WHERE school_id = ?",
			"DELETE FROM schools_subjects WHERE school_id = ?",
			"DELETE FROM school_classes WHERE school_id = ?",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.SchoolModel{}, "id = ?", id).Error
	})
	if err != nil {
		log.Println("[ERROR] delete school:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school")
	}
	return helper.JsonDeleted(c, "School deleted successfully", nil)
}

// PUT /api/schools/:id/admin/:user_id — ganti owner sekolah.
// Target harus ber-role admin, kalau tidak 400 dan owner lama tetap.
func (sc *SchoolController) AssignOwner(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID format")
	}
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", schoolID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	var user userModel.UserModel
	if err := sc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if user.Role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "user is not an admin")
	}

	school.OwnerID = &user.ID
	if err := sc.DB.Save(&school).Error; err != nil {
		log.Println("[ERROR] assign owner:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign school owner")
	}
	return helper.JsonUpdated(c, "School owner updated successfully", dto.ToSchoolResponse(&school))
}
