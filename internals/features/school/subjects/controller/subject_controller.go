package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/subjects/dto"
	"schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/subjects/
func (sc *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	subject := req.ToModel()
	if err := sc.DB.Create(subject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject name already exists")
		}
		log.Println("[ERROR] create subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created successfully", subject)
}

// GET /api/subjects/ — daftar kosong tetap 200 (tanpa cek empty)
func (sc *SubjectController) GetSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	if err := sc.DB.Find(&subjects).Error; err != nil {
		log.Println("[ERROR] fetch subjects:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}
	return helper.JsonOK(c, "Subjects fetched successfully", subjects)
}

// GET /api/subjects/:id
func (sc *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}

	var subject model.SubjectModel
	if err := sc.DB.First(&subject, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonOK(c, "Subject fetched successfully", subject)
}

// PUT /api/subjects/:id — partial update, balas 201 (perilaku lama)
func (sc *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}

	var subject model.SubjectModel
	if err := sc.DB.First(&subject, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := helper.Validate().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	req.ApplyToModel(&subject)

	if err := sc.DB.Save(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject name already exists")
		}
		log.Println("[ERROR] update subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Subject succesfully updated", subject)
}

// DELETE /api/subjects/:id — balas 201 (perilaku lama), cascade relasi + scores
func (sc *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}

	var subject model.SubjectModel
	if err := sc.DB.First(&subject, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM scores WHERE subject_id = ?",
			"DELETE FROM class_subjects WHERE subject_id = ?",
			"DELETE FROM users_subjects WHERE subject_id = ?",
			"DELETE FROM schools_subjects WHERE subject_id = ?",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.SubjectModel{}, "id = ?", id).Error
	})
	if err != nil {
		log.Println("[ERROR] delete subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.JsonWithCode(c, fiber.StatusCreated, "Subject succesfully deleted", nil)
}
